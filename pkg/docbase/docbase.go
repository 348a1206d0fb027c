// Package docbase is the public facade over the embedded document store: an
// Instance wraps the internal engine, applies functional options, and
// exposes the CRUD and query operations external callers use.
package docbase

import (
	"context"

	"github.com/iamNilotpal/docbase/internal/engine"
	"github.com/iamNilotpal/docbase/internal/index"
	"github.com/iamNilotpal/docbase/internal/query"
	"github.com/iamNilotpal/docbase/pkg/document"
	dberrors "github.com/iamNilotpal/docbase/pkg/errors"
	"github.com/iamNilotpal/docbase/pkg/logger"
	"github.com/iamNilotpal/docbase/pkg/options"
)

// Instance is the primary entry point for interacting with a docbase
// document store: getting, setting, updating, deleting, and querying
// documents, plus registering secondary-index views.
type Instance struct {
	engine  *engine.Engine
	options *options.Options
}

// NewInstance creates and initializes a new docbase Instance: builds a
// logger for service, applies any supplied OptionFuncs over the defaults,
// and loads the configured directory's documents into memory.
func NewInstance(ctx context.Context, service string, opts ...options.OptionFunc) (*Instance, error) {
	log := logger.New(service)

	defaultOpts := options.NewDefaultOptions()
	for _, opt := range opts {
		opt(&defaultOpts)
	}

	eng, err := engine.New(ctx, &engine.Config{Logger: log, Options: &defaultOpts})
	if err != nil {
		return nil, err
	}

	return &Instance{engine: eng, options: &defaultOpts}, nil
}

// RegisterView registers a named view for use with QueryView.
func (i *Instance) RegisterView(name string, view index.View) error {
	return i.engine.RegisterView(name, view)
}

// GetItem returns a deep clone of the document stored under key, or nil if
// absent.
func (i *Instance) GetItem(key string) (document.Document, error) {
	return i.engine.GetItem(key)
}

// SetItem stores doc under key. opts defaults to consistency checking
// enabled; pass options.WithCheckConsistency(false) to skip the `_rev`
// check.
func (i *Instance) SetItem(key string, doc document.Document, opts ...options.WriteOptionFunc) (document.Document, error) {
	writeOpts := options.NewDefaultWriteOptions()
	for _, opt := range opts {
		opt(&writeOpts)
	}
	return i.engine.SetItem(key, doc, writeOpts)
}

// UpdateItem fetches the existing document (nil if absent), applies fn, and
// stores the result. This is the low-level engine contract: fn(nil) is
// permitted and creates the document.
func (i *Instance) UpdateItem(key string, fn engine.UpdateFunc, opts ...options.WriteOptionFunc) (document.Document, error) {
	writeOpts := options.NewDefaultWriteOptions()
	for _, opt := range opts {
		opt(&writeOpts)
	}
	return i.engine.UpdateItem(key, fn, writeOpts)
}

// UpdateItemExisting behaves like UpdateItem but requires the document to
// already exist, failing with a NotFoundError otherwise. This is the
// wrapper-level policy choice for spec.md §9's updateItem Open Question;
// UpdateItem keeps the engine's create-on-missing-key contract for callers
// that want it. The existence check runs inside the same per-key lock
// acquisition as fn, not as a separate call beforehand, so a concurrent
// DeleteItem cannot slip between the check and the update.
func (i *Instance) UpdateItemExisting(key string, fn engine.UpdateFunc, opts ...options.WriteOptionFunc) (document.Document, error) {
	guarded := func(existing document.Document) (document.Document, error) {
		if existing == nil {
			return nil, dberrors.NewNotFoundError(key)
		}
		return fn(existing)
	}
	return i.UpdateItem(key, guarded, opts...)
}

// DeleteItem removes the document stored under key. Idempotent.
func (i *Instance) DeleteItem(key string) (string, error) {
	return i.engine.DeleteItem(key)
}

// QueryKeys runs the primary-key range query.
func (i *Instance) QueryKeys(opts ...options.QueryOptionFunc) (query.Result, error) {
	queryOpts := options.NewDefaultQueryOptions()
	for _, opt := range opts {
		opt(&queryOpts)
	}
	return i.engine.QueryKeys(queryOpts)
}

// QueryView runs a view-backed query against a previously registered view.
func (i *Instance) QueryView(name string, opts ...options.QueryOptionFunc) (query.Result, error) {
	queryOpts := options.NewDefaultQueryOptions()
	for _, opt := range opts {
		opt(&queryOpts)
	}
	return i.engine.QueryView(name, queryOpts)
}

// Close gracefully shuts down the Instance, releasing its engine resources.
func (i *Instance) Close() error {
	return i.engine.Close()
}
