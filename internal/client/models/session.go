package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotObject = errors.New("session record must be a JSON object")

// SessionRecord is the opaque user record returned by the auth backend.
//
// The record keeps the exact JSON the server sent (compacted), so what is
// persisted is what was received. Accessors only read well-known fields.
type SessionRecord struct {
	raw    []byte
	fields map[string]json.RawMessage
}

// NewSessionRecord parses data as a JSON object.
func NewSessionRecord(data []byte) (*SessionRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode session record: %w", err)
	}
	if fields == nil {
		return nil, ErrNotObject
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("compact session record: %w", err)
	}

	return &SessionRecord{raw: buf.Bytes(), fields: fields}, nil
}

// Bytes returns a copy of the record's JSON encoding.
func (s *SessionRecord) Bytes() []byte {
	return bytes.Clone(s.raw)
}

// Field returns the string value stored under key.
// Non-string and missing values report ok == false.
func (s *SessionRecord) Field(key string) (string, bool) {
	raw, ok := s.fields[key]
	if !ok {
		return "", false
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	return v, true
}

// ID returns the user id, read from "_id" or "id".
func (s *SessionRecord) ID() string {
	if v, ok := s.Field("_id"); ok {
		return v
	}
	v, _ := s.Field("id")
	return v
}

func (s *SessionRecord) Username() string {
	v, _ := s.Field("username")
	return v
}

func (s *SessionRecord) Token() string {
	v, _ := s.Field("token")
	return v
}

// ExpiresAt decodes the exp claim of the session token without verifying its
// signature. ok is false when the record has no token, the token is not a JWT,
// or it carries no expiry.
func (s *SessionRecord) ExpiresAt() (exp time.Time, ok bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired reports whether the session token expired before now.
// Records without a decodable expiry never expire.
func (s *SessionRecord) Expired(now time.Time) bool {
	exp, ok := s.ExpiresAt()
	return ok && !now.Before(exp)
}

func (s *SessionRecord) MarshalJSON() ([]byte, error) {
	if s == nil || s.raw == nil {
		return []byte("null"), nil
	}
	return s.Bytes(), nil
}

func (s *SessionRecord) UnmarshalJSON(data []byte) error {
	rec, err := NewSessionRecord(data)
	if err != nil {
		return err
	}
	*s = *rec
	return nil
}
