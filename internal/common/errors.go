package common

import "errors"

var (
	// ErrInvalidToken reports a session token that could not be decoded.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired reports a session whose token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
)
