package domain

import "github.com/google/uuid"

// Authorize is the ownership check run before every mutation of a post or
// comment. It is pure: the owner must already have been fetched, and the
// caller decides what to do with the error (roll back, map to 403).
func Authorize(authenticatedID, ownerID uuid.UUID, action, resource string) error {
	if authenticatedID != ownerID {
		return &PermissionError{Resource: resource, Action: action}
	}
	return nil
}
