package errors

// ProgrammerError is a specialized error type for bad-argument failures
// raised before any I/O is attempted: an empty key, a non-positive limit, an
// unregistered view, a missing type. It embeds baseError to inherit the
// standard error functionality, then adds the field/rule context that
// pinpoints exactly what the caller got wrong.
type ProgrammerError struct {
	*baseError

	// Identifies which specific argument or field failed validation.
	field string

	// Names the constraint that was violated (e.g. "required", "positive",
	// "registered").
	rule string

	// Captures what value was actually provided.
	provided any

	// Describes what would have been valid.
	expected any
}

// NewProgrammerError creates a new ProgrammerError with the provided context.
func NewProgrammerError(err error, msg string) *ProgrammerError {
	return &ProgrammerError{baseError: NewBaseError(err, ErrorCodeProgrammer, msg)}
}

// Override base error methods to return *ProgrammerError instead of *baseError.

// WithMessage updates the error message while preserving the ProgrammerError type.
func (pe *ProgrammerError) WithMessage(msg string) *ProgrammerError {
	pe.baseError.WithMessage(msg)
	return pe
}

// WithCode sets the error code while preserving the ProgrammerError type.
func (pe *ProgrammerError) WithCode(code ErrorCode) *ProgrammerError {
	pe.baseError.WithCode(code)
	return pe
}

// WithDetail adds contextual information while preserving the ProgrammerError type.
func (pe *ProgrammerError) WithDetail(key string, value any) *ProgrammerError {
	pe.baseError.WithDetail(key, value)
	return pe
}

// WithField sets which argument or field was invalid.
func (pe *ProgrammerError) WithField(field string) *ProgrammerError {
	pe.field = field
	return pe
}

// WithRule specifies which constraint was violated.
func (pe *ProgrammerError) WithRule(rule string) *ProgrammerError {
	pe.rule = rule
	return pe
}

// WithProvided captures the value that was provided.
func (pe *ProgrammerError) WithProvided(value any) *ProgrammerError {
	pe.provided = value
	return pe
}

// WithExpected describes what would have been a valid value.
func (pe *ProgrammerError) WithExpected(value any) *ProgrammerError {
	pe.expected = value
	return pe
}

// Field returns the argument or field name that failed validation.
func (pe *ProgrammerError) Field() string { return pe.field }

// Rule returns the constraint that was violated.
func (pe *ProgrammerError) Rule() string { return pe.rule }

// Provided returns the value that was provided.
func (pe *ProgrammerError) Provided() any { return pe.provided }

// Expected returns what would have been a valid value.
func (pe *ProgrammerError) Expected() any { return pe.expected }

// NewRequiredFieldError creates a ProgrammerError for a missing required key.
func NewRequiredFieldError(fieldName string) *ProgrammerError {
	return NewProgrammerError(nil, "required field is missing or empty").
		WithField(fieldName).
		WithRule("required")
}

// NewInvalidLimitError creates a ProgrammerError for a non-positive limit.
func NewInvalidLimitError(provided int) *ProgrammerError {
	return NewProgrammerError(nil, "limit must be a positive integer").
		WithField("limit").
		WithRule("positive").
		WithProvided(provided)
}

// NewUnregisteredViewError creates a ProgrammerError for a query against a
// view name that was never registered.
func NewUnregisteredViewError(viewName string) *ProgrammerError {
	return NewProgrammerError(nil, "view is not registered").
		WithField("viewName").
		WithRule("registered").
		WithProvided(viewName)
}
