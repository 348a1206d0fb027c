package errors

// ViewError wraps a failure raised from inside a view's map callback. It
// embeds baseError to inherit the standard error functionality, then adds
// the view name so a caller can tell which registered view misbehaved.
type ViewError struct {
	*baseError
	viewName string // Name the view was registered under.
}

// NewViewError creates a new ViewError wrapping the callback's cause.
func NewViewError(err error, msg string) *ViewError {
	return &ViewError{baseError: NewBaseError(err, ErrorCodeView, msg)}
}

// WithMessage updates the error message while preserving the ViewError type.
func (e *ViewError) WithMessage(msg string) *ViewError {
	e.baseError.WithMessage(msg)
	return e
}

// WithCode sets the error code while preserving the ViewError type.
func (e *ViewError) WithCode(code ErrorCode) *ViewError {
	e.baseError.WithCode(code)
	return e
}

// WithDetail adds contextual information while preserving the ViewError type.
func (e *ViewError) WithDetail(key string, value any) *ViewError {
	e.baseError.WithDetail(key, value)
	return e
}

// WithViewName records which view produced the failure.
func (e *ViewError) WithViewName(name string) *ViewError {
	e.viewName = name
	return e
}

// ViewName returns the name of the view that raised the error.
func (e *ViewError) ViewName() string { return e.viewName }
