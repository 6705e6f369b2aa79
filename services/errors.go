package services

import "errors"

// Sentinel errors returned by the domain services. Controllers translate
// them to HTTP statuses; wrap with fmt.Errorf("...: %w", Err...) to keep
// the record that triggered them in the message.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidReference   = errors.New("referenced record does not exist")
	ErrConflict           = errors.New("conflicting assignment")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
