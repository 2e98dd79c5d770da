package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupFixture struct {
	api      *fakeAPI
	storage  *fakeStorage
	state    *fakeState
	notifier *fakeNotifier
	events   *[]string
	ctrl     *SignupController
}

func newSignupFixture() *signupFixture {
	events := &[]string{}
	f := &signupFixture{
		api:      &fakeAPI{},
		storage:  newFakeStorage(events),
		state:    &fakeState{events: events},
		notifier: &fakeNotifier{},
		events:   events,
	}
	f.ctrl = NewSignupController(f.api, f.storage, f.state, f.notifier, logging.NewNop())
	return f
}

func validRequest() models.SignupRequest {
	return models.SignupRequest{
		FullName:        "A B",
		Username:        "ab",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Gender:          models.GenderMale,
		ContactNumber:   "555",
	}
}

func TestSignupController_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.SignupRequest)
		wantErr error
		wantMsg string
	}{
		{"missing field", func(r *models.SignupRequest) { r.Username = "" }, models.ErrMissingField, MsgMissingField},
		{"missing contact", func(r *models.SignupRequest) { r.ContactNumber = "" }, models.ErrMissingField, MsgMissingField},
		{"mismatch", func(r *models.SignupRequest) { r.ConfirmPassword = "secret2" }, models.ErrPasswordMismatch, MsgPasswordMismatch},
		{"too short", func(r *models.SignupRequest) { r.Password, r.ConfirmPassword = "ab", "ab" }, models.ErrPasswordTooShort, MsgPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSignupFixture()
			req := validRequest()
			tt.mutate(&req)

			err := f.ctrl.Validate(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{tt.wantMsg}, f.notifier.errors)
		})
	}
}

func TestSignupController_ValidateOK_NoSideEffects(t *testing.T) {
	f := newSignupFixture()

	require.NoError(t, f.ctrl.Validate(context.Background(), validRequest()))
	assert.Empty(t, f.notifier.errors)
	assert.Empty(t, f.api.calls)
}

func TestSignupController_InvalidInput_NoNetwork(t *testing.T) {
	f := newSignupFixture()
	req := validRequest()
	req.FullName = ""

	err := f.ctrl.Signup(context.Background(), req)
	require.ErrorIs(t, err, models.ErrMissingField)

	assert.Empty(t, f.api.calls)
	assert.Empty(t, *f.events)
	assert.Equal(t, []string{MsgMissingField}, f.notifier.errors)
	assert.False(t, f.ctrl.InProgress())
}

func TestSignupController_Success_StoresExactRecord(t *testing.T) {
	f := newSignupFixture()
	f.api.signupRet = mustRecord(`{"id":"u1","token":"t1"}`)
	var seenInProgress bool
	f.api.during = func() { seenInProgress = f.ctrl.InProgress() }

	require.NoError(t, f.ctrl.Signup(context.Background(), validRequest()))

	assert.True(t, seenInProgress)
	assert.False(t, f.ctrl.InProgress())
	assert.Equal(t, validRequest(), f.api.lastSignup)
	assert.Equal(t, `{"id":"u1","token":"t1"}`, string(f.storage.data[common.SessionStorageKey]))
	require.NotNil(t, f.state.current)
	assert.Equal(t, "u1", f.state.current.ID())
	assert.Equal(t, []string{"storage.set", "state.set"}, *f.events)
	assert.Empty(t, f.notifier.errors)
}

func TestSignupController_RemoteError(t *testing.T) {
	f := newSignupFixture()
	f.api.signupErr = &client.RemoteError{Status: 400, Message: "username taken"}
	var seenInProgress bool
	f.api.during = func() { seenInProgress = f.ctrl.InProgress() }

	err := f.ctrl.Signup(context.Background(), validRequest())

	var re *client.RemoteError
	require.ErrorAs(t, err, &re)
	assert.True(t, seenInProgress)
	assert.Equal(t, []string{"username taken"}, f.notifier.errors)
	assert.Empty(t, f.storage.data)
	assert.Nil(t, f.state.current)
	assert.False(t, f.ctrl.InProgress())
}

func TestSignupController_TransportError(t *testing.T) {
	f := newSignupFixture()
	f.api.signupErr = errors.New("dial tcp: connection refused")
	var seenInProgress bool
	f.api.during = func() { seenInProgress = f.ctrl.InProgress() }

	err := f.ctrl.Signup(context.Background(), validRequest())

	var te *client.TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, seenInProgress)
	assert.Equal(t, []string{"dial tcp: connection refused"}, f.notifier.errors)
	assert.Empty(t, *f.events)
	assert.False(t, f.ctrl.InProgress())
}

func TestSignupController_StorageFailure_StateUntouched(t *testing.T) {
	f := newSignupFixture()
	f.api.signupRet = mustRecord(`{"id":"u1"}`)
	f.storage.setErr = errBoom

	err := f.ctrl.Signup(context.Background(), validRequest())

	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, f.state.current)
	assert.Equal(t, []string{"storage.set"}, *f.events)
	require.Len(t, f.notifier.errors, 1)
	assert.Contains(t, f.notifier.errors[0], "boom")
	assert.False(t, f.ctrl.InProgress())
}

func TestClassify(t *testing.T) {
	re := &client.RemoteError{Message: "x"}
	assert.Same(t, re, classify(re).(*client.RemoteError))

	te := &client.TransportError{Err: errBoom}
	assert.Same(t, te, classify(te).(*client.TransportError))

	var got *client.TransportError
	require.ErrorAs(t, classify(errBoom), &got)
	assert.ErrorIs(t, got, errBoom)
}
