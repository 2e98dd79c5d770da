// Package models defines the client-side request and session types of the
// gophchat CLI.
package models

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted at signup, in characters.
const MinPasswordLength = 6

var (
	ErrMissingField     = errors.New("missing required field")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password too short")
)

// FieldError names the form field that failed validation.
// It unwraps to ErrMissingField.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField.Error(), e.Field)
}

func (e *FieldError) Unwrap() error { return ErrMissingField }

// Gender is the self-reported gender of a new account. The constants are the
// values the chat backend knows; any other string is passed through as is.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// SignupRequest is the payload sent to the signup endpoint.
type SignupRequest struct {
	FullName        string `json:"fullname"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Gender          Gender `json:"gender"`
	ContactNumber   string `json:"contactno"`
}

// Validate checks the request locally. Checks run in a fixed order and the
// first failure is returned: missing field, password mismatch, short password.
func (r SignupRequest) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"fullname", r.FullName},
		{"username", r.Username},
		{"password", r.Password},
		{"confirmPassword", r.ConfirmPassword},
		{"gender", string(r.Gender)},
		{"contactno", r.ContactNumber},
	}
	for _, f := range required {
		if f.value == "" {
			return &FieldError{Field: f.name}
		}
	}

	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}

	if utf8.RuneCountInString(r.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

// LoginRequest is the payload sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Username == "" {
		return &FieldError{Field: "username"}
	}
	if r.Password == "" {
		return &FieldError{Field: "password"}
	}
	return nil
}
