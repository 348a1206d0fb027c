package errors

// ErrorCode represents a standardized way to categorize different types of errors.
type ErrorCode string

// The error taxonomy the core produces or propagates.
const (
	// ErrorCodeProgrammer marks a bad-argument failure raised before any I/O:
	// an empty key, a non-positive limit, an unregistered view, a missing type.
	ErrorCodeProgrammer ErrorCode = "PROGRAMMER_ERROR"

	// ErrorCodeConflict marks a `_rev` mismatch on write. Raised after lock
	// acquisition, before I/O.
	ErrorCodeConflict ErrorCode = "CONFLICT"

	// ErrorCodeNotFound marks a caller-wrapper requirement that the document
	// already exist before an update is applied.
	ErrorCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrorCodeIO marks a wrapped disk read/write/delete failure.
	ErrorCodeIO ErrorCode = "IO_ERROR"

	// ErrorCodeView marks a wrapped failure from a view's map callback.
	ErrorCodeView ErrorCode = "VIEW_ERROR"

	// ErrorCodeLoad marks a fatal failure during Load: an unreadable
	// directory or an unparsable document file.
	ErrorCodeLoad ErrorCode = "LOAD_ERROR"
)
