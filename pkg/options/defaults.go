package options

const (
	// DefaultDirectory is the base directory docbase stores document files
	// in when no directory is configured explicitly.
	DefaultDirectory = "/var/lib/docbase/documents"

	// DefaultQueryLimit is the page size applied when a query omits Limit.
	DefaultQueryLimit = 10
)

// defaultOptions holds the default construction configuration.
var defaultOptions = Options{Directory: DefaultDirectory}

// NewDefaultOptions returns the default construction options.
func NewDefaultOptions() Options {
	return defaultOptions
}
