package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrBadCredentials = errors.New("bad credentials")
)

// PermissionError is an authorization denial for a specific resource. It is
// distinct from an authentication failure: the caller is logged in but does
// not own the resource.
type PermissionError struct {
	Resource string
	Action   string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("You do not have permission to %s this %s", e.Action, e.Resource)
}

// ConflictError carries field-keyed uniqueness violations, e.g. both the
// username and the email already taken at signup.
type ConflictError struct {
	Fields map[string]string
}

func (e *ConflictError) Error() string {
	return "unique constraint violated"
}
