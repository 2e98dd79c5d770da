package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophchat/internal/client/models"
)

type fakeAPI struct {
	signupRet *models.SessionRecord
	signupErr error
	loginRet  *models.SessionRecord
	loginErr  error
	logoutErr error

	calls      []string
	lastSignup models.SignupRequest
	lastLogin  models.LoginRequest

	// during is invoked while the request is "in flight".
	during func()
}

func (f *fakeAPI) Signup(_ context.Context, req models.SignupRequest) (*models.SessionRecord, error) {
	f.calls = append(f.calls, "signup")
	f.lastSignup = req
	if f.during != nil {
		f.during()
	}
	return f.signupRet, f.signupErr
}

func (f *fakeAPI) Login(_ context.Context, req models.LoginRequest) (*models.SessionRecord, error) {
	f.calls = append(f.calls, "login")
	f.lastLogin = req
	if f.during != nil {
		f.during()
	}
	return f.loginRet, f.loginErr
}

func (f *fakeAPI) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	if f.during != nil {
		f.during()
	}
	return f.logoutErr
}

// fakeStorage records writes; events is shared with fakeState to check ordering.
type fakeStorage struct {
	data      map[string][]byte
	setErr    error
	deleteErr error
	clearErr  error
	events    *[]string
}

func newFakeStorage(events *[]string) *fakeStorage {
	return &fakeStorage{data: map[string][]byte{}, events: events}
}

func (f *fakeStorage) Set(_ context.Context, key string, value []byte) error {
	*f.events = append(*f.events, "storage.set")
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	*f.events = append(*f.events, "storage.delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.data, key)
	return nil
}

func (f *fakeStorage) Clear(context.Context) error {
	*f.events = append(*f.events, "storage.clear")
	if f.clearErr != nil {
		return f.clearErr
	}
	f.data = map[string][]byte{}
	return nil
}

type fakeState struct {
	current *models.SessionRecord
	events  *[]string
}

func (f *fakeState) SetCurrentSession(rec *models.SessionRecord) {
	*f.events = append(*f.events, "state.set")
	f.current = rec
}

func (f *fakeState) Clear() {
	*f.events = append(*f.events, "state.clear")
	f.current = nil
}

type fakeNotifier struct {
	errors    []string
	successes []string
}

func (f *fakeNotifier) NotifyError(message string)   { f.errors = append(f.errors, message) }
func (f *fakeNotifier) NotifySuccess(message string) { f.successes = append(f.successes, message) }

var errBoom = errors.New("boom")

func mustRecord(raw string) *models.SessionRecord {
	rec, err := models.NewSessionRecord([]byte(raw))
	if err != nil {
		panic(err)
	}
	return rec
}
