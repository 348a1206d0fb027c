// Package errors builds a small hierarchy on top of a foundational baseError:
// every domain-specific error type embeds it and adds the context that
// matters for that domain (a conflicting revision, a missing key, the file
// path involved, the view that failed). Callers can check for a specific
// type with the Is/As helpers below, or fall back to the shared ErrorCode
// for coarse-grained handling.
package errors

import (
	stdErrors "errors"
	"os"
)

// IsProgrammerError reports whether err is, or wraps, a *ProgrammerError.
func IsProgrammerError(err error) bool {
	var pe *ProgrammerError
	return stdErrors.As(err, &pe)
}

// IsConflictError reports whether err is, or wraps, a *ConflictError.
func IsConflictError(err error) bool {
	var ce *ConflictError
	return stdErrors.As(err, &ce)
}

// IsNotFoundError reports whether err is, or wraps, a *NotFoundError.
func IsNotFoundError(err error) bool {
	var nfe *NotFoundError
	return stdErrors.As(err, &nfe)
}

// IsIOError reports whether err is, or wraps, a *IOError.
func IsIOError(err error) bool {
	var ioe *IOError
	return stdErrors.As(err, &ioe)
}

// IsViewError reports whether err is, or wraps, a *ViewError.
func IsViewError(err error) bool {
	var ve *ViewError
	return stdErrors.As(err, &ve)
}

// IsLoadError reports whether err is, or wraps, a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return stdErrors.As(err, &le)
}

// AsProgrammerError extracts a *ProgrammerError from err's chain, if present.
func AsProgrammerError(err error) (*ProgrammerError, bool) {
	var pe *ProgrammerError
	if stdErrors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsConflictError extracts a *ConflictError from err's chain, if present.
func AsConflictError(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if stdErrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// AsNotFoundError extracts a *NotFoundError from err's chain, if present.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nfe *NotFoundError
	if stdErrors.As(err, &nfe) {
		return nfe, true
	}
	return nil, false
}

// AsIOError extracts a *IOError from err's chain, if present.
func AsIOError(err error) (*IOError, bool) {
	var ioe *IOError
	if stdErrors.As(err, &ioe) {
		return ioe, true
	}
	return nil, false
}

// AsViewError extracts a *ViewError from err's chain, if present.
func AsViewError(err error) (*ViewError, bool) {
	var ve *ViewError
	if stdErrors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsLoadError extracts a *LoadError from err's chain, if present.
func AsLoadError(err error) (*LoadError, bool) {
	var le *LoadError
	if stdErrors.As(err, &le) {
		return le, true
	}
	return nil, false
}

// GetErrorCode extracts the ErrorCode carried by err, trying each domain
// error type in turn. It returns the empty ErrorCode for errors that don't
// originate from this package.
func GetErrorCode(err error) ErrorCode {
	if pe, ok := AsProgrammerError(err); ok {
		return pe.Code()
	}
	if ce, ok := AsConflictError(err); ok {
		return ce.Code()
	}
	if nfe, ok := AsNotFoundError(err); ok {
		return nfe.Code()
	}
	if ioe, ok := AsIOError(err); ok {
		return ioe.Code()
	}
	if ve, ok := AsViewError(err); ok {
		return ve.Code()
	}
	if le, ok := AsLoadError(err); ok {
		return le.Code()
	}
	return ""
}

// GetErrorDetails extracts the structured detail map carried by err, trying
// each domain error type in turn. It returns an empty map for errors that
// don't carry one.
func GetErrorDetails(err error) map[string]any {
	if pe, ok := AsProgrammerError(err); ok && pe.Details() != nil {
		return pe.Details()
	}
	if ce, ok := AsConflictError(err); ok && ce.Details() != nil {
		return ce.Details()
	}
	if nfe, ok := AsNotFoundError(err); ok && nfe.Details() != nil {
		return nfe.Details()
	}
	if ioe, ok := AsIOError(err); ok && ioe.Details() != nil {
		return ioe.Details()
	}
	if ve, ok := AsViewError(err); ok && ve.Details() != nil {
		return ve.Details()
	}
	if le, ok := AsLoadError(err); ok && le.Details() != nil {
		return le.Details()
	}
	return make(map[string]any)
}

// ClassifyFileError turns a raw filesystem error into an *IOError carrying
// the path, key, and operation that were in progress, special-casing the
// permission-denied case since it is common enough to warrant its own
// message.
func ClassifyFileError(err error, path, key, op string) error {
	if os.IsPermission(err) {
		return NewIOError(err, "insufficient permissions").
			WithPath(path).WithKey(key).WithOp(op)
	}
	if os.IsNotExist(err) {
		return NewIOError(err, "file does not exist").
			WithPath(path).WithKey(key).WithOp(op)
	}
	return NewIOError(err, "filesystem operation failed").
		WithPath(path).WithKey(key).WithOp(op)
}
