package domain

import "errors"

// DateTimeFormat is the wire format for every date in the API.
const DateTimeFormat = "2006-01-02 15:04:05"

var (
	MessageFailedQueryRequest = "failed to parse request parameters"

	MessageUnauthorizedMissing = "unauthorized request, please provide credentials"
	MessageUnauthorizedInvalid = "unauthorized request, invalid credentials"

	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
