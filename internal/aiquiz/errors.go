package aiquiz

import "errors"

var (
	// ErrAuthentication means the provider rejected our credentials.
	ErrAuthentication = errors.New("provider authentication failed")
	// ErrRateLimit means the provider throttled the request.
	ErrRateLimit = errors.New("provider rate limit exceeded")
	// ErrProvider covers network failures, empty and unparseable responses.
	ErrProvider = errors.New("provider request failed")
	// ErrUnavailable means every configured provider failed.
	ErrUnavailable = errors.New("question generation unavailable")
)
