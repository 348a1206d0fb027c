package errors

// NotFoundError marks a caller-level requirement that a document already
// exist before an operation proceeds (e.g. the strict variant of an update
// that must not create).
type NotFoundError struct {
	*baseError
	key string // Document key that was not found.
}

// NewNotFoundError creates a new NotFoundError for the given key.
func NewNotFoundError(key string) *NotFoundError {
	return &NotFoundError{
		baseError: NewBaseError(nil, ErrorCodeNotFound, "document not found"),
		key:       key,
	}
}

// WithMessage updates the error message while preserving the NotFoundError type.
func (e *NotFoundError) WithMessage(msg string) *NotFoundError {
	e.baseError.WithMessage(msg)
	return e
}

// WithCode sets the error code while preserving the NotFoundError type.
func (e *NotFoundError) WithCode(code ErrorCode) *NotFoundError {
	e.baseError.WithCode(code)
	return e
}

// WithDetail adds contextual information while preserving the NotFoundError type.
func (e *NotFoundError) WithDetail(key string, value any) *NotFoundError {
	e.baseError.WithDetail(key, value)
	return e
}

// Key returns the document key that was not found.
func (e *NotFoundError) Key() string { return e.key }
