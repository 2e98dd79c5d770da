// Package session holds the process-wide view of the signed-in user.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/client/models"
	"github.com/dmitrijs2005/gophchat/internal/common"
)

// Store is the shared session state. The zero value is an empty store.
type Store struct {
	mu      sync.RWMutex
	current *models.SessionRecord
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SetCurrentSession(rec *models.SessionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = rec
}

// Current returns the signed-in session, if any.
func (s *Store) Current() (*models.SessionRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}

func (s *Store) Clear() {
	s.SetCurrentSession(nil)
}

// Loader is the durable storage Restore reads from.
type Loader interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// Restore loads the session persisted under common.SessionStorageKey.
//
// A missing key leaves the store empty. A record whose token expired before
// now is removed from storage and reported as common.ErrTokenExpired.
// An unreadable record is removed as well and reported as common.ErrInvalidToken.
func (s *Store) Restore(ctx context.Context, storage Loader, now time.Time) error {
	raw, err := storage.Get(ctx, common.SessionStorageKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if raw == nil {
		return nil
	}

	rec, err := models.NewSessionRecord(raw)
	if err != nil {
		if derr := storage.Delete(ctx, common.SessionStorageKey); derr != nil {
			return fmt.Errorf("drop unreadable session: %w", derr)
		}
		return fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if rec.Expired(now) {
		if err := storage.Delete(ctx, common.SessionStorageKey); err != nil {
			return fmt.Errorf("drop expired session: %w", err)
		}
		return common.ErrTokenExpired
	}

	s.SetCurrentSession(rec)
	return nil
}
