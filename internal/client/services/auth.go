package services

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/client/notify"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

// AuthAPI is the slice of the backend API used to start and end sessions.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.SessionRecord, error)
	Logout(ctx context.Context) error
}

// LocalStorage is session storage that can also be wiped as a whole.
type LocalStorage interface {
	SessionStorage
	Clear(ctx context.Context) error
}

// AuthController signs an existing user in and out.
type AuthController struct {
	sessionKeeper
	local      LocalStorage
	api        AuthAPI
	inProgress atomic.Bool
}

func NewAuthController(api AuthAPI, storage LocalStorage, sessions SessionState,
	notifier notify.Notifier, log logging.Logger) *AuthController {
	return &AuthController{
		sessionKeeper: sessionKeeper{
			storage:  storage,
			sessions: sessions,
			notifier: notifier,
			log:      log.With("component", "auth"),
		},
		local: storage,
		api:   api,
	}
}

func (c *AuthController) InProgress() bool {
	return c.inProgress.Load()
}

// Login authenticates req and replaces the current session with the one the
// backend returns. Failures are handled as in SignupController.Signup.
func (c *AuthController) Login(ctx context.Context, req models.LoginRequest) error {
	if err := req.Validate(); err != nil {
		return c.rejectInvalid(ctx, "login", err)
	}

	c.inProgress.Store(true)
	defer c.inProgress.Store(false)

	rec, err := c.api.Login(ctx, req)
	if err != nil {
		return c.fail(ctx, "login", err)
	}

	if err := c.save(ctx, rec); err != nil {
		err = storageError(err)
		c.log.Error(ctx, "login succeeded but session was not saved", "error", err)
		c.notifier.NotifyError(err.Error())
		return err
	}

	c.log.Info(ctx, "logged in", "user_id", rec.ID())
	return nil
}

// Logout ends the session on the backend, then removes it from durable
// storage and the shared state. A backend answer of unauthorized means the
// session is already gone remotely, so the local copy is removed as well.
func (c *AuthController) Logout(ctx context.Context) error {
	c.inProgress.Store(true)
	defer c.inProgress.Store(false)

	if err := c.api.Logout(ctx); err != nil {
		if !errors.Is(err, client.ErrUnauthorized) {
			return c.fail(ctx, "logout", err)
		}
		c.log.Warn(ctx, "session already ended on server", "error", err)
	}

	if err := c.drop(ctx); err != nil {
		err = storageError(err)
		c.log.Error(ctx, "session was not removed", "error", err)
		c.notifier.NotifyError(err.Error())
		return err
	}

	c.log.Info(ctx, "logged out")
	return nil
}

// Forget wipes everything the client keeps locally and clears the shared
// session state. The backend is not contacted, so a session that is still
// open remotely stays open there.
func (c *AuthController) Forget(ctx context.Context) error {
	if err := c.local.Clear(ctx); err != nil {
		err = storageError(err)
		c.log.Error(ctx, "local data was not cleared", "error", err)
		c.notifier.NotifyError(err.Error())
		return err
	}
	c.sessions.Clear()

	c.log.Info(ctx, "local data cleared")
	return nil
}
