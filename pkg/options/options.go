// Package options provides the functional-option configuration surface for
// docbase: construction options (where documents live on disk), write
// options (consistency checking), and query options (range/pagination
// normalization per the engine's query contract).
package options

import (
	"strings"

	"github.com/iamNilotpal/docbase/pkg/collate"
	dberrors "github.com/iamNilotpal/docbase/pkg/errors"
)

// Options configures a docbase engine instance.
type Options struct {
	// Directory is the base path where document files are stored. Required,
	// non-empty.
	//
	// Default: "/var/lib/docbase/documents"
	Directory string `json:"directory"`
}

// OptionFunc is a function type that modifies Options.
type OptionFunc func(*Options)

// WithDefaultOptions applies the package defaults to Options.
func WithDefaultOptions() OptionFunc {
	return func(o *Options) {
		opts := NewDefaultOptions()
		o.Directory = opts.Directory
	}
}

// WithDirectory sets the base directory documents are persisted under.
func WithDirectory(directory string) OptionFunc {
	return func(o *Options) {
		directory = strings.TrimSpace(directory)
		if directory != "" {
			o.Directory = directory
		}
	}
}

// WriteOptions configures a single setItem/updateItem call.
type WriteOptions struct {
	// CheckConsistency gates the `_rev` comparison against the stored
	// document before a write is applied.
	//
	// Default: true
	CheckConsistency bool `json:"checkConsistency"`
}

// WriteOptionFunc is a function type that modifies WriteOptions.
type WriteOptionFunc func(*WriteOptions)

// WithCheckConsistency toggles the `_rev` conflict check for a write.
func WithCheckConsistency(check bool) WriteOptionFunc {
	return func(o *WriteOptions) {
		o.CheckConsistency = check
	}
}

// NewDefaultWriteOptions returns the default write options: consistency
// checking enabled.
func NewDefaultWriteOptions() WriteOptions {
	return WriteOptions{CheckConsistency: true}
}

// QueryOptions configures a queryKeys/queryView call. See Normalize for the
// defaulting rules applied before the query engine consumes it.
type QueryOptions struct {
	// Key, if set, pins both StartKey and EndKey to the same value (an
	// exact-key query).
	Key *string `json:"key,omitempty"`

	// StartKey is the inclusive lower bound of the range (or upper bound,
	// when Descending).
	StartKey *string `json:"startKey,omitempty"`

	// EndKey is the inclusive upper bound of the range (or lower bound,
	// when Descending).
	EndKey *string `json:"endKey,omitempty"`

	// Descending reverses the sort order; StartKey becomes the greater
	// bound and EndKey the lesser.
	Descending bool `json:"descending"`

	// InclusiveStartIndex is the pagination offset, counted in the full
	// sorted entry list (not re-zeroed at the range's lower bound), so a
	// returned ExclusiveEndIndex can be passed back unchanged.
	//
	// Default: 0
	InclusiveStartIndex int `json:"inclusiveStartIndex"`

	// Limit caps the number of entries returned.
	//
	// Default: 10
	Limit int `json:"limit"`

	// IncludeDocuments, if true, attaches a deep copy of each entry's
	// document alongside the index entry.
	IncludeDocuments bool `json:"includeDocuments"`
}

// QueryOptionFunc is a function type that modifies QueryOptions.
type QueryOptionFunc func(*QueryOptions)

// WithKey pins the query to a single exact key.
func WithKey(key string) QueryOptionFunc {
	return func(o *QueryOptions) { o.Key = &key }
}

// WithStartKey sets the range's lower bound (upper, if descending).
func WithStartKey(key string) QueryOptionFunc {
	return func(o *QueryOptions) { o.StartKey = &key }
}

// WithEndKey sets the range's upper bound (lower, if descending).
func WithEndKey(key string) QueryOptionFunc {
	return func(o *QueryOptions) { o.EndKey = &key }
}

// WithDescending reverses sort order for the query.
func WithDescending(descending bool) QueryOptionFunc {
	return func(o *QueryOptions) { o.Descending = descending }
}

// WithInclusiveStartIndex sets the pagination offset.
func WithInclusiveStartIndex(index int) QueryOptionFunc {
	return func(o *QueryOptions) { o.InclusiveStartIndex = index }
}

// WithLimit caps the number of entries returned.
func WithLimit(limit int) QueryOptionFunc {
	return func(o *QueryOptions) { o.Limit = limit }
}

// WithIncludeDocuments attaches each entry's document to the result.
func WithIncludeDocuments(include bool) QueryOptionFunc {
	return func(o *QueryOptions) { o.IncludeDocuments = include }
}

// NewDefaultQueryOptions returns the default query options: unbounded range,
// ascending, first page of 10, keys only.
func NewDefaultQueryOptions() QueryOptions {
	return QueryOptions{
		Descending:          false,
		InclusiveStartIndex: 0,
		Limit:               DefaultQueryLimit,
		IncludeDocuments:    false,
	}
}

// Normalize applies the defaulting rules of the query contract in place and
// validates the result, returning a ProgrammerError if InclusiveStartIndex
// or Limit are out of range.
//
//   - If Key is set, StartKey and EndKey are both pinned to it.
//   - If StartKey is unset, it defaults to OMEGA when Descending, ALPHA
//     otherwise.
//   - If EndKey is unset, it defaults to ALPHA when Descending, OMEGA
//     otherwise.
//   - Limit defaults to 10 when zero; InclusiveStartIndex defaults to 0.
func (o *QueryOptions) Normalize() error {
	if o.Key != nil {
		o.StartKey = o.Key
		o.EndKey = o.Key
	}

	if o.StartKey == nil {
		bound := collate.ALPHA
		if o.Descending {
			bound = collate.OMEGA
		}
		o.StartKey = &bound
	}

	if o.EndKey == nil {
		bound := collate.OMEGA
		if o.Descending {
			bound = collate.ALPHA
		}
		o.EndKey = &bound
	}

	if o.Limit == 0 {
		o.Limit = DefaultQueryLimit
	}

	if o.InclusiveStartIndex < 0 {
		return dberrors.NewProgrammerError(nil, "inclusiveStartIndex must be a non-negative integer").
			WithField("inclusiveStartIndex").
			WithRule("non-negative").
			WithProvided(o.InclusiveStartIndex)
	}

	if o.Limit <= 0 {
		return dberrors.NewInvalidLimitError(o.Limit)
	}

	return nil
}
