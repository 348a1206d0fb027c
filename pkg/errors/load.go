package errors

// LoadError marks a fatal failure while loading the on-disk document set at
// startup: an unreadable directory or an unparsable document file.
type LoadError struct {
	*baseError
	path string // File or directory path that failed to load.
}

// NewLoadError creates a new LoadError wrapping the underlying cause.
func NewLoadError(err error, msg string) *LoadError {
	return &LoadError{baseError: NewBaseError(err, ErrorCodeLoad, msg)}
}

// WithMessage updates the error message while preserving the LoadError type.
func (e *LoadError) WithMessage(msg string) *LoadError {
	e.baseError.WithMessage(msg)
	return e
}

// WithCode sets the error code while preserving the LoadError type.
func (e *LoadError) WithCode(code ErrorCode) *LoadError {
	e.baseError.WithCode(code)
	return e
}

// WithDetail adds contextual information while preserving the LoadError type.
func (e *LoadError) WithDetail(key string, value any) *LoadError {
	e.baseError.WithDetail(key, value)
	return e
}

// WithPath records which file or directory failed to load.
func (e *LoadError) WithPath(path string) *LoadError {
	e.path = path
	return e
}

// Path returns the file or directory path that failed to load.
func (e *LoadError) Path() string { return e.path }
