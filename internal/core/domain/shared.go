package domain

import (
	"fmt"
	"strconv"
)

// ID is a store-assigned product identifier. Zero means not yet persisted.
type ID int64

func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a positive decimal identifier.
func ParseID(raw string) (ID, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, NewValidationError("id", fmt.Sprintf("invalid id %q", raw))
	}
	return ID(value), nil
}

// ValidationError reports a value that violates a domain rule.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

type Event interface {
	GetName() string
	GetEntityName() string
}
