package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	api      *fakeAPI
	storage  *fakeStorage
	state    *fakeState
	notifier *fakeNotifier
	events   *[]string
	ctrl     *AuthController
}

func newAuthFixture() *authFixture {
	events := &[]string{}
	f := &authFixture{
		api:      &fakeAPI{},
		storage:  newFakeStorage(events),
		state:    &fakeState{events: events},
		notifier: &fakeNotifier{},
		events:   events,
	}
	f.ctrl = NewAuthController(f.api, f.storage, f.state, f.notifier, logging.NewNop())
	return f
}

func TestAuthController_Login_Success(t *testing.T) {
	f := newAuthFixture()
	f.api.loginRet = mustRecord(`{"_id":"m1","username":"ab"}`)
	var seenInProgress bool
	f.api.during = func() { seenInProgress = f.ctrl.InProgress() }

	require.NoError(t, f.ctrl.Login(context.Background(), models.LoginRequest{Username: "ab", Password: "secret1"}))

	assert.True(t, seenInProgress)
	assert.False(t, f.ctrl.InProgress())
	assert.Equal(t, `{"_id":"m1","username":"ab"}`, string(f.storage.data[common.SessionStorageKey]))
	assert.Equal(t, "m1", f.state.current.ID())
	assert.Equal(t, []string{"storage.set", "state.set"}, *f.events)
}

func TestAuthController_Login_MissingField(t *testing.T) {
	f := newAuthFixture()

	err := f.ctrl.Login(context.Background(), models.LoginRequest{Username: "ab"})

	require.ErrorIs(t, err, models.ErrMissingField)
	assert.Equal(t, []string{MsgMissingField}, f.notifier.errors)
	assert.Empty(t, f.api.calls)
}

func TestAuthController_Login_RemoteError(t *testing.T) {
	f := newAuthFixture()
	f.api.loginErr = &client.RemoteError{Status: 400, Message: "Invalid username or password"}

	err := f.ctrl.Login(context.Background(), models.LoginRequest{Username: "ab", Password: "x"})

	require.Error(t, err)
	assert.Equal(t, []string{"Invalid username or password"}, f.notifier.errors)
	assert.Empty(t, *f.events)
}

func TestAuthController_Logout(t *testing.T) {
	f := newAuthFixture()
	f.storage.data[common.SessionStorageKey] = []byte(`{"id":"u1"}`)
	f.state.current = mustRecord(`{"id":"u1"}`)

	require.NoError(t, f.ctrl.Logout(context.Background()))

	assert.Empty(t, f.storage.data)
	assert.Nil(t, f.state.current)
	assert.Equal(t, []string{"storage.delete", "state.clear"}, *f.events)
	assert.False(t, f.ctrl.InProgress())
}

func TestAuthController_Logout_UnauthorizedStillClears(t *testing.T) {
	f := newAuthFixture()
	f.api.logoutErr = &client.RemoteError{Status: 401, Message: "Unauthorized"}
	f.state.current = mustRecord(`{"id":"u1"}`)

	require.NoError(t, f.ctrl.Logout(context.Background()))
	assert.Nil(t, f.state.current)
	assert.Empty(t, f.notifier.errors)
}

func TestAuthController_Logout_TransportErrorKeepsSession(t *testing.T) {
	f := newAuthFixture()
	f.api.logoutErr = errBoom
	f.state.current = mustRecord(`{"id":"u1"}`)

	err := f.ctrl.Logout(context.Background())

	require.ErrorIs(t, err, errBoom)
	assert.NotNil(t, f.state.current)
	assert.Empty(t, *f.events)
	assert.Equal(t, []string{"boom"}, f.notifier.errors)
}

func TestAuthController_Logout_StorageFailureKeepsState(t *testing.T) {
	f := newAuthFixture()
	f.storage.deleteErr = errBoom
	f.state.current = mustRecord(`{"id":"u1"}`)

	err := f.ctrl.Logout(context.Background())

	require.ErrorIs(t, err, errBoom)
	assert.NotNil(t, f.state.current)
	assert.Len(t, f.notifier.errors, 1)
}

func TestAuthController_Forget(t *testing.T) {
	f := newAuthFixture()
	f.storage.data[common.SessionStorageKey] = []byte(`{"id":"u1"}`)
	f.storage.data["other"] = []byte("x")
	f.state.current = mustRecord(`{"id":"u1"}`)

	require.NoError(t, f.ctrl.Forget(context.Background()))

	assert.Empty(t, f.storage.data)
	assert.Nil(t, f.state.current)
	assert.Equal(t, []string{"storage.clear", "state.clear"}, *f.events)
	assert.Empty(t, f.api.calls, "forget stays local")
	assert.Empty(t, f.notifier.errors)
}

func TestAuthController_Forget_StorageFailureKeepsState(t *testing.T) {
	f := newAuthFixture()
	f.storage.clearErr = errBoom
	f.state.current = mustRecord(`{"id":"u1"}`)

	err := f.ctrl.Forget(context.Background())

	require.ErrorIs(t, err, errBoom)
	assert.NotNil(t, f.state.current)
	assert.Equal(t, []string{"storage.clear"}, *f.events)
	require.Len(t, f.notifier.errors, 1)
	assert.Contains(t, f.notifier.errors[0], "boom")
}
