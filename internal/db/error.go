package db

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// DuplicateKeyError is an error type for duplicate key errors
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	var target *DuplicateKeyError
	return errors.As(err, &target)
}

// VersionConflictError is returned when an optimistic update finds the
// document at a different version than the one it was read at
type VersionConflictError struct {
	Key             string
	ExpectedVersion int64
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("version conflict for %s: expected version %d", e.Key, e.ExpectedVersion)
}

func IsVersionConflictError(err error) bool {
	var target *VersionConflictError
	return errors.As(err, &target)
}

// IsConflictError reports write conflicts that are resolved by re-reading
func IsConflictError(err error) bool {
	return IsDuplicateKeyError(err) || IsVersionConflictError(err)
}

// Not found Error
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func duplicateKeyError(err error, key, message string) error {
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{
			Key:     key,
			Message: message,
		}
	}
	return err
}
