// Package engine implements the docbase facade: getItem, setItem,
// updateItem, deleteItem, queryKeys, queryView, registerView, and load. It
// coordinates the per-key locking queue, the document store, the view
// indexer, and the query engine, and applies the `_rev` consistency check
// on every write.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/iamNilotpal/docbase/internal/index"
	"github.com/iamNilotpal/docbase/internal/lockqueue"
	"github.com/iamNilotpal/docbase/internal/query"
	"github.com/iamNilotpal/docbase/internal/storage"
	"github.com/iamNilotpal/docbase/pkg/collate"
	"github.com/iamNilotpal/docbase/pkg/document"
	dberrors "github.com/iamNilotpal/docbase/pkg/errors"
	"github.com/iamNilotpal/docbase/pkg/options"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrEngineClosed is returned when attempting to perform operations on a
// closed engine.
var ErrEngineClosed = errors.New("operation failed: cannot access closed engine")

// UpdateFunc is the caller-supplied function updateItem applies to the
// existing document (nil if absent) to produce the next document.
type UpdateFunc func(existing document.Document) (document.Document, error)

// Engine coordinates storage, locking, indexing, and querying behind the
// facade operations. It is safe for concurrent use.
type Engine struct {
	options *options.Options
	log     *zap.SugaredLogger
	closed  atomic.Bool

	locks   *lockqueue.Queue
	store   *storage.Store
	views   *index.Registry
	compare *collate.Comparator
}

// Config holds the parameters needed to construct an Engine.
type Config struct {
	Options *options.Options
	Logger  *zap.SugaredLogger
}

// New constructs an Engine and loads any documents already on disk.
func New(ctx context.Context, config *Config) (*Engine, error) {
	if config == nil || config.Options == nil || config.Logger == nil {
		return nil, dberrors.NewProgrammerError(nil, "engine configuration is required").
			WithField("config").WithRule("required")
	}

	store, err := storage.New(ctx, &storage.Config{Options: config.Options, Logger: config.Logger})
	if err != nil {
		return nil, err
	}

	if err := store.Load(ctx); err != nil {
		return nil, err
	}

	return &Engine{
		options: config.Options,
		log:     config.Logger,
		locks:   lockqueue.New(),
		store:   store,
		views:   index.NewRegistry(),
		compare: collate.New(),
	}, nil
}

// RegisterView stores view under name. Must be called during setup, before
// any queryView call against that name; not serialized by the locking
// queue.
func (e *Engine) RegisterView(name string, view index.View) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	if name == "" {
		return dberrors.NewRequiredFieldError("name")
	}
	e.views.Register(name, view)
	return nil
}

// GetItem returns a deep clone of the document stored under key, or nil if
// absent. Lock-free.
func (e *Engine) GetItem(key string) (document.Document, error) {
	if e.closed.Load() {
		return nil, ErrEngineClosed
	}
	if key == "" {
		return nil, dberrors.NewRequiredFieldError("key")
	}

	doc, ok := e.store.Get(key)
	if !ok {
		return nil, nil
	}
	return doc, nil
}

// SetItem stores doc under key, bumping `_rev`. If opts.CheckConsistency
// and doc carries an explicit `_rev`, it must match the stored revision or
// the call fails with a ConflictError and the stored document is
// unchanged.
func (e *Engine) SetItem(key string, doc document.Document, opts options.WriteOptions) (document.Document, error) {
	if e.closed.Load() {
		return nil, ErrEngineClosed
	}
	if key == "" {
		return nil, dberrors.NewRequiredFieldError("key")
	}

	e.locks.Acquire(key)
	defer e.locks.Release(key)

	existing, hasExisting := e.store.Get(key)

	next := doc.Clone()
	if next == nil {
		next = make(document.Document)
	}

	if hasExisting && opts.CheckConsistency && next.HasRev() {
		if next.Rev() != existing.Rev() {
			return nil, dberrors.NewConflictError(key, next.Rev(), existing.Rev())
		}
	}

	var nextRev int64
	if hasExisting {
		nextRev = existing.Rev() + 1
	}
	next = next.WithRev(nextRev)

	if err := e.store.Put(key, next); err != nil {
		return nil, err
	}

	return next.Clone(), nil
}

// UpdateItem fetches the existing document clone for key (nil if absent),
// calls fn to produce the next document, runs the same consistency check
// as SetItem, and stores the result. If fn returns an error, the lock is
// released and the error propagates untouched.
func (e *Engine) UpdateItem(key string, fn UpdateFunc, opts options.WriteOptions) (document.Document, error) {
	if e.closed.Load() {
		return nil, ErrEngineClosed
	}
	if key == "" {
		return nil, dberrors.NewRequiredFieldError("key")
	}

	e.locks.Acquire(key)
	defer e.locks.Release(key)

	existing, hasExisting := e.store.Get(key)

	var existingClone document.Document
	if hasExisting {
		existingClone = existing
	}

	next, err := fn(existingClone)
	if err != nil {
		return nil, err
	}

	next = next.Clone()
	if next == nil {
		next = make(document.Document)
	}

	if hasExisting && opts.CheckConsistency && next.HasRev() {
		if next.Rev() != existing.Rev() {
			return nil, dberrors.NewConflictError(key, next.Rev(), existing.Rev())
		}
	}

	var nextRev int64
	if hasExisting {
		nextRev = existing.Rev() + 1
	}
	next = next.WithRev(nextRev)

	if err := e.store.Put(key, next); err != nil {
		return nil, err
	}

	return next.Clone(), nil
}

// DeleteItem removes the document stored under key. Idempotent: deleting a
// missing key is not an error.
func (e *Engine) DeleteItem(key string) (string, error) {
	if e.closed.Load() {
		return "", ErrEngineClosed
	}
	if key == "" {
		return "", dberrors.NewRequiredFieldError("key")
	}

	e.locks.Acquire(key)
	defer e.locks.Release(key)

	if err := e.store.Delete(key); err != nil {
		return "", err
	}

	return key, nil
}

// QueryKeys runs the primary-key range query (§4.6) over the current
// document map.
func (e *Engine) QueryKeys(opts options.QueryOptions) (query.Result, error) {
	if e.closed.Load() {
		return query.Result{}, ErrEngineClosed
	}
	if err := opts.Normalize(); err != nil {
		return query.Result{}, err
	}

	snapshot := e.store.Snapshot()
	entries := make([]index.Entry, 0, len(snapshot))
	for key, doc := range snapshot {
		entry := index.Entry{IndexKey: key, DocumentKey: key}
		if opts.IncludeDocuments {
			entry.Document = doc.Clone()
		}
		entries = append(entries, entry)
	}

	return query.Run(e.compare, entries, opts), nil
}

// QueryView runs a view-backed query: name must already be registered via
// RegisterView.
func (e *Engine) QueryView(name string, opts options.QueryOptions) (query.Result, error) {
	if e.closed.Load() {
		return query.Result{}, ErrEngineClosed
	}
	if name == "" {
		return query.Result{}, dberrors.NewRequiredFieldError("name")
	}

	view, ok := e.views.Lookup(name)
	if !ok {
		return query.Result{}, dberrors.NewUnregisteredViewError(name)
	}

	if err := opts.Normalize(); err != nil {
		return query.Result{}, err
	}

	snapshot := e.store.Snapshot()
	docs := make(map[string]map[string]any, len(snapshot))
	for k, v := range snapshot {
		docs[k] = v.Clone()
	}

	entries, err := index.IndexAll(name, view, docs, opts.IncludeDocuments)
	if err != nil {
		return query.Result{}, err
	}

	return query.Run(e.compare, entries, opts), nil
}

// Close marks the engine unusable and releases the underlying store. If a
// mutation is still in flight against some key, that key is reported
// alongside any store teardown error rather than silently dropped.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return ErrEngineClosed
	}

	var errs error
	if held := e.locks.HeldKeys(); len(held) > 0 {
		errs = multierr.Append(errs, fmt.Errorf("engine closed with %d key(s) still locked: %v", len(held), held))
	}

	return multierr.Append(errs, e.store.Close())
}
