package service

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateAccount = errors.New("email already exists")
	ErrUnknownAccount   = errors.New("user does not exist")
	ErrBadCredential    = errors.New("incorrect password")
	ErrNoFilesProvided  = errors.New("no files uploaded")
	ErrNoSubmissions    = errors.New("no files found")
)

// ValidationError marks a missing required field; the handler maps it to
// a 400 without exposing anything else about the request.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
