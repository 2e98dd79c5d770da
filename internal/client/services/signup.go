package services

import (
	"context"
	"sync/atomic"

	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/client/notify"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

// SignupAPI is the slice of the backend API the signup flow needs.
type SignupAPI interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.SessionRecord, error)
}

// SignupController validates a signup form, creates the account remotely and
// signs the new user in.
//
// Every failure is surfaced through the notifier exactly once. The error
// returned by Validate and Signup is the same error, for callers that want to
// branch on it; ignoring it is safe.
type SignupController struct {
	sessionKeeper
	api        SignupAPI
	inProgress atomic.Bool
}

func NewSignupController(api SignupAPI, storage SessionStorage, sessions SessionState,
	notifier notify.Notifier, log logging.Logger) *SignupController {
	return &SignupController{
		sessionKeeper: sessionKeeper{
			storage:  storage,
			sessions: sessions,
			notifier: notifier,
			log:      log.With("component", "signup"),
		},
		api: api,
	}
}

// InProgress reports whether a signup request is in flight.
func (c *SignupController) InProgress() bool {
	return c.inProgress.Load()
}

// Validate checks req locally. On failure it notifies the user and returns
// one of models.ErrMissingField, models.ErrPasswordMismatch or
// models.ErrPasswordTooShort. It never touches the network.
func (c *SignupController) Validate(ctx context.Context, req models.SignupRequest) error {
	if err := req.Validate(); err != nil {
		return c.rejectInvalid(ctx, "signup", err)
	}
	return nil
}

// Signup validates req, sends it to the backend and, on success, stores the
// returned session record under the session key before publishing it to the
// shared session state.
//
// Backend refusals come back as *client.RemoteError and network or decoding
// failures as *client.TransportError. Neither writes anything locally.
func (c *SignupController) Signup(ctx context.Context, req models.SignupRequest) error {
	if err := c.Validate(ctx, req); err != nil {
		return err
	}

	c.inProgress.Store(true)
	defer c.inProgress.Store(false)

	c.log.Info(ctx, "signup request", "username", req.Username, "gender", req.Gender)

	rec, err := c.api.Signup(ctx, req)
	if err != nil {
		return c.fail(ctx, "signup", err)
	}

	if err := c.save(ctx, rec); err != nil {
		err = storageError(err)
		c.log.Error(ctx, "signup succeeded but session was not saved", "error", err)
		c.notifier.NotifyError(err.Error())
		return err
	}

	c.log.Info(ctx, "signed up", "user_id", rec.ID())
	return nil
}
