// Package index implements the view registry and indexer: named, stateless
// map-emit callbacks that are invoked over every stored document to produce
// secondary index entries.
package index

import (
	dberrors "github.com/iamNilotpal/docbase/pkg/errors"
)

// Emit is the callback a View's Map method calls zero or more times per
// document to produce an index entry.
type Emit func(key, value any)

// View is a named, stateless mapping from a document to zero or more index
// entries. Map receives the document exactly as passed to IndexAll (the
// engine passes deep clones, not the stored documents) and must not retain
// it past the call.
type View interface {
	Map(doc map[string]any, emit Emit) error
}

// Entry is a single emitted index entry: the sort key, the value emitted
// alongside it, the owning document's primary key, and optionally the
// document itself.
type Entry struct {
	IndexKey    any
	Value       any
	DocumentKey string
	Document    map[string]any
}

// SearchKey satisfies rangesearch.Keyed.
func (e Entry) SearchKey() any { return e.IndexKey }

// Registry holds the set of named views registered for a store.
type Registry struct {
	views map[string]View
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[string]View)}
}

// Register stores view under name, replacing any existing registration.
// Register is not safe to call concurrently with Lookup; views must be
// registered during setup, before queries begin.
func (r *Registry) Register(name string, view View) {
	r.views[name] = view
}

// Lookup returns the view registered under name, if any.
func (r *Registry) Lookup(name string) (View, bool) {
	v, ok := r.views[name]
	return v, ok
}

// IndexAll invokes view.Map over every document in docs (keyed by primary
// key), collecting every emitted entry. If a view's Map returns an error,
// IndexAll wraps it with the view name and returns immediately with no
// partial result.
func IndexAll(viewName string, view View, docs map[string]map[string]any, includeDocuments bool) ([]Entry, error) {
	entries := make([]Entry, 0, len(docs))

	for key, doc := range docs {
		emit := func(indexKey, value any) {
			entry := Entry{IndexKey: indexKey, Value: value, DocumentKey: key}
			if includeDocuments {
				entry.Document = doc
			}
			entries = append(entries, entry)
		}

		if err := view.Map(doc, emit); err != nil {
			return nil, dberrors.NewViewError(err, "view map callback failed").
				WithViewName(viewName)
		}
	}

	return entries, nil
}
