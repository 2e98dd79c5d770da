package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/google/uuid"
)

// maxResponseSize bounds how much of a response body is read.
const maxResponseSize = 1 << 20

// Client is the auth backend API used by the CLI services.
type Client interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.SessionRecord, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.SessionRecord, error)
	Logout(ctx context.Context) error
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient talks JSON over HTTP to the auth backend.
type HTTPClient struct {
	client    httpClient
	serverURL url.URL
	log       logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(client httpClient, serverURL url.URL, log logging.Logger) *HTTPClient {
	return &HTTPClient{client: client, serverURL: serverURL, log: log}
}

// NewDefaultHTTPClient builds an HTTPClient over net/http with a cookie jar,
// so the session cookie set at signup or login is replayed on logout.
func NewDefaultHTTPClient(serverURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", serverURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: scheme and host are required", serverURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return NewHTTPClient(&http.Client{Timeout: timeout, Jar: jar}, *u, log), nil
}

func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (*models.SessionRecord, error) {
	body, err := c.post(ctx, common.SignupPath, req)
	if err != nil {
		return nil, err
	}
	return decodeSession(body)
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.SessionRecord, error) {
	body, err := c.post(ctx, common.LoginPath, req)
	if err != nil {
		return nil, err
	}
	return decodeSession(body)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.post(ctx, common.LogoutPath, nil)
	return err
}

func decodeSession(body []byte) (*models.SessionRecord, error) {
	rec, err := models.NewSessionRecord(body)
	if err != nil {
		return nil, malformed(err)
	}
	return rec, nil
}

// post sends payload as JSON and returns the raw body of a successful answer.
// A nil payload sends an empty body.
func (c *HTTPClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	var reqBody io.Reader = http.NoBody
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, &TransportError{Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(b)
	}

	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)
	endpoint := c.serverURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), reqBody)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn(ctx, "auth request failed", "path", path, "error", err)
		return nil, unavailable(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.log.Debug(ctx, "auth request done", "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	success := resp.StatusCode >= 200 && resp.StatusCode <= 299
	// logout may answer with no content at all
	if success && len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		if !success {
			return nil, statusError(resp.StatusCode)
		}
		return nil, malformed(err)
	}
	if envelope == nil {
		return nil, malformed(models.ErrNotObject)
	}

	if msg, ok := errorMessage(envelope["error"]); ok {
		return nil, &RemoteError{Status: resp.StatusCode, Message: msg}
	}
	if !success {
		return nil, statusError(resp.StatusCode)
	}

	return body, nil
}

// errorMessage reports whether raw holds a set error value. Empty strings,
// false, 0 and null count as unset.
func errorMessage(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}

	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, t != ""
	case bool:
		if !t {
			return "", false
		}
		return "true", true
	case float64:
		if t == 0 {
			return "", false
		}
		return string(raw), true
	default:
		return string(raw), true
	}
}
