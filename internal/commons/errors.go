package commons

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrConcurrencyConflict = errors.New("Conflicting concurrent update detected")

// ValidationError reports malformed or out-of-range input rejected before
// any business rule is evaluated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NotFoundError reports a missing referenced record where the response
// still carries a field/message payload (member create/update paths).
type NotFoundError struct {
	Field   string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Field + ": " + e.Message
}

// RuleViolationError reports well-formed input that violates a business
// rule. Kept distinct from ValidationError so the HTTP layer can answer
// 422 instead of 400.
type RuleViolationError struct {
	Field   string
	Message string
}

func (e *RuleViolationError) Error() string {
	return e.Field + ": " + e.Message
}
