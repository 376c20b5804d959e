package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Not-found errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgEnemyNotFound  = "enemy not found"
	ErrMsgStatNotFound   = "stat not found"
	ErrMsgRecordNotFound = "no record with that name"

	// Protected-record errors
	ErrMsgKeyItemProtected = "cannot remove a key item"

	// Collection errors
	ErrMsgUnknownCollection = "unknown collection"

	// Navigation errors
	ErrMsgInvalidTransition = "invalid screen transition"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrEnemyNotFound  = errors.New(ErrMsgEnemyNotFound)
	ErrStatNotFound   = errors.New(ErrMsgStatNotFound)
	ErrRecordNotFound = errors.New(ErrMsgRecordNotFound)

	ErrKeyItemProtected = errors.New(ErrMsgKeyItemProtected)

	ErrUnknownCollection = errors.New(ErrMsgUnknownCollection)

	ErrInvalidTransition = errors.New(ErrMsgInvalidTransition)
)

// IsNotFound reports whether err is any of the not-found errors
func IsNotFound(err error) bool {
	return errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrEnemyNotFound) ||
		errors.Is(err, ErrStatNotFound) ||
		errors.Is(err, ErrRecordNotFound)
}
