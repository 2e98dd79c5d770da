// Package services contains the application services of the gophchat client:
// account signup, login and logout. Each operation reports failures to the
// user through a notify.Notifier and keeps durable storage and the shared
// session state in step.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophchat/internal/client/client"
	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/client/notify"
	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
)

// User-facing validation messages.
const (
	MsgMissingField     = "Please fill in all fields"
	MsgPasswordMismatch = "Passwords do not match"
	MsgPasswordTooShort = "Password must be at least 6 characters"
)

// SessionStorage is the durable store the session record is written to.
type SessionStorage interface {
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// SessionState is the process-wide session holder.
type SessionState interface {
	SetCurrentSession(rec *models.SessionRecord)
	Clear()
}

// sessionKeeper holds what signup, login and logout share: where the
// session goes and how failures are reported.
type sessionKeeper struct {
	storage  SessionStorage
	sessions SessionState
	notifier notify.Notifier
	log      logging.Logger
}

// save writes rec to durable storage and only then publishes it to the
// shared state, so a failed write never leaves the two out of step.
func (k *sessionKeeper) save(ctx context.Context, rec *models.SessionRecord) error {
	if err := k.storage.Set(ctx, common.SessionStorageKey, rec.Bytes()); err != nil {
		return err
	}
	k.sessions.SetCurrentSession(rec)
	return nil
}

func (k *sessionKeeper) drop(ctx context.Context) error {
	if err := k.storage.Delete(ctx, common.SessionStorageKey); err != nil {
		return err
	}
	k.sessions.Clear()
	return nil
}

// rejectInvalid notifies the user about a local validation failure.
func (k *sessionKeeper) rejectInvalid(ctx context.Context, op string, err error) error {
	k.log.Info(ctx, op+" rejected", "reason", err.Error())
	k.notifier.NotifyError(validationMessage(err))
	return err
}

// fail classifies err, notifies the user with its message and returns it.
func (k *sessionKeeper) fail(ctx context.Context, op string, err error) error {
	err = classify(err)
	k.log.Warn(ctx, op+" failed", "error", err)
	k.notifier.NotifyError(err.Error())
	return err
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrMissingField):
		return MsgMissingField
	case errors.Is(err, models.ErrPasswordMismatch):
		return MsgPasswordMismatch
	case errors.Is(err, models.ErrPasswordTooShort):
		return MsgPasswordTooShort
	default:
		return err.Error()
	}
}

// classify leaves backend refusals and transport failures as they are and
// treats anything else coming out of the API as a transport failure.
func classify(err error) error {
	var (
		re *client.RemoteError
		te *client.TransportError
	)
	if errors.As(err, &re) || errors.As(err, &te) {
		return err
	}
	return &client.TransportError{Err: err}
}

// storageError marks a failure to persist or remove the local session.
func storageError(err error) error {
	return fmt.Errorf("session storage: %w", err)
}
