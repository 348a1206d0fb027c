// Package storage implements the document store's memory + disk layer: one
// JSON file per document in a configured directory, mirrored by an
// in-memory map for lock-free reads. Writes and removes always touch disk
// before memory so invariant 1 (memory exists iff the file exists) holds
// outside the instant a lock is held across the two.
package storage

import (
	"context"
	stdErrors "errors"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/iamNilotpal/docbase/pkg/document"
	dberrors "github.com/iamNilotpal/docbase/pkg/errors"
	"github.com/iamNilotpal/docbase/pkg/filesys"
	"github.com/iamNilotpal/docbase/pkg/options"
	"go.uber.org/zap"
)

// ErrStoreClosed is returned by Load, Put, and Close once the Store has been
// closed.
var ErrStoreClosed = stdErrors.New("operation failed: cannot access closed store")

// loadBatchSize bounds the number of files read concurrently during Load,
// capping open file descriptors on startup.
const loadBatchSize = 50

// Store is the memory + disk document layer. All document access beyond
// Load goes through Get/Put/Delete, which the engine calls with its per-key
// lock already held.
type Store struct {
	mu        sync.RWMutex
	docs      map[string]document.Document
	directory string
	closed    atomic.Bool
	log       *zap.SugaredLogger
}

// Config holds the parameters needed to construct a Store.
type Config struct {
	Options *options.Options
	Logger  *zap.SugaredLogger
}

// New validates config, ensures the document directory exists, and returns
// an empty Store. Call Load to populate it from any documents already on
// disk.
func New(ctx context.Context, config *Config) (*Store, error) {
	if config == nil || config.Options == nil || config.Logger == nil {
		return nil, dberrors.NewProgrammerError(nil, "storage configuration is required").
			WithField("config").WithRule("required")
	}
	if config.Options.Directory == "" {
		return nil, dberrors.NewProgrammerError(nil, "storage directory is required").
			WithField("options.Directory").WithRule("required")
	}

	config.Logger.Infow("initializing document store", "directory", config.Options.Directory)

	if err := filesys.CreateDir(config.Options.Directory, 0755, true); err != nil {
		return nil, dberrors.NewIOError(err, "failed to create document directory").
			WithPath(config.Options.Directory).WithOp("createDir")
	}

	config.Logger.Infow("document directory ready", "directory", config.Options.Directory)

	return &Store{
		docs:      make(map[string]document.Document),
		directory: config.Options.Directory,
		log:       config.Logger,
	}, nil
}

// Load enumerates every ".json" file in the store's directory, decodes its
// filename back to a primary key, parses its body, and populates the
// in-memory map. Files are read in bounded-size batches run in parallel
// internally; batches run sequentially. Any file error is fatal to Load.
func (s *Store) Load(ctx context.Context) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	entries, err := os.ReadDir(s.directory)
	if err != nil {
		return dberrors.NewLoadError(err, "failed to read document directory").
			WithPath(s.directory)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, entry.Name())
	}

	s.log.Infow("loading documents", "directory", s.directory, "count", len(names))

	for start := 0; start < len(names); start += loadBatchSize {
		end := start + loadBatchSize
		if end > len(names) {
			end = len(names)
		}
		batch := names[start:end]

		type loaded struct {
			key string
			doc document.Document
			err error
		}
		results := make([]loaded, len(batch))

		var wg sync.WaitGroup
		for i, name := range batch {
			wg.Add(1)
			go func(i int, name string) {
				defer wg.Done()

				key, err := DecodeFilename(name)
				if err != nil {
					results[i] = loaded{err: dberrors.NewLoadError(err, "failed to decode document filename").
						WithPath(filepath.Join(s.directory, name))}
					return
				}

				path := filepath.Join(s.directory, name)
				body, err := filesys.ReadFile(path)
				if err != nil {
					results[i] = loaded{err: dberrors.NewLoadError(err, "failed to read document file").
						WithPath(path)}
					return
				}

				doc, err := document.Unmarshal(body)
				if err != nil {
					results[i] = loaded{err: dberrors.NewLoadError(err, "failed to parse document body").
						WithPath(path)}
					return
				}

				results[i] = loaded{key: key, doc: doc}
			}(i, name)
		}
		wg.Wait()

		for _, r := range results {
			if r.err != nil {
				return r.err
			}
			s.docs[r.key] = r.doc
		}
	}

	s.log.Infow("documents loaded", "directory", s.directory, "count", len(s.docs))
	return nil
}

// Get returns a clone of the document stored under key, and whether it was
// present. Lock-free: callers needing a consistent read-modify-write must
// hold the per-key lock themselves.
func (s *Store) Get(key string) (document.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[key]
	if !ok {
		return nil, false
	}
	return doc.Clone(), true
}

// Put writes doc to disk under key, then updates the in-memory map. If the
// disk write fails, memory is left untouched and the error is returned.
func (s *Store) Put(key string, doc document.Document) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	path := s.pathFor(key)

	body, err := document.Marshal(doc)
	if err != nil {
		return dberrors.NewIOError(err, "failed to serialize document").
			WithKey(key).WithPath(path).WithOp("marshal")
	}

	if err := filesys.WriteFile(path, 0644, body); err != nil {
		return dberrors.ClassifyFileError(err, path, key, "write")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docs == nil {
		return ErrStoreClosed
	}
	s.docs[key] = doc

	return nil
}

// Delete removes the file for key (missing is not an error) and the
// in-memory entry. Idempotent on an absent document.
func (s *Store) Delete(key string) error {
	path := s.pathFor(key)

	if err := filesys.DeleteFile(path); err != nil && !os.IsNotExist(err) {
		return dberrors.ClassifyFileError(err, path, key, "remove")
	}

	s.mu.Lock()
	delete(s.docs, key)
	s.mu.Unlock()

	return nil
}

// Snapshot returns the current document map keyed by primary key, without
// cloning each document. Callers (the view indexer) must not mutate the
// returned documents.
func (s *Store) Snapshot() map[string]document.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]document.Document, len(s.docs))
	for k, v := range s.docs {
		out[k] = v
	}
	return out
}

// Close marks the store unusable and releases its in-memory map.
func (s *Store) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrStoreClosed
	}

	s.log.Infow("closing document store", "directory", s.directory)

	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.docs)
	s.docs = nil

	s.log.Infow("document store closed")
	return nil
}

func (s *Store) pathFor(key string) string {
	return filepath.Join(s.directory, EncodeFilename(key))
}

// unreservedFilenameChars is the RFC 3986 unreserved set the on-disk
// filename encoding leaves untouched; every other byte is percent-encoded,
// which also keeps path separators and other filesystem-restricted
// characters out of the resulting name.
const unreservedFilenameChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789.-_~"

// EncodeFilename maps a primary key to its on-disk filename:
// percent-encoding every byte outside the unreserved set, then appending
// ".json". The mapping is deterministic and losslessly invertible via
// DecodeFilename.
func EncodeFilename(key string) string {
	var b []byte
	for i := 0; i < len(key); i++ {
		c := key[i]
		if isUnreserved(c) {
			b = append(b, c)
			continue
		}
		b = append(b, '%', upperHex(c>>4), upperHex(c&0x0f))
	}
	return string(b) + ".json"
}

// DecodeFilename recovers the primary key from an on-disk filename produced
// by EncodeFilename.
func DecodeFilename(name string) (string, error) {
	stem := name[:len(name)-len(".json")]
	return url.QueryUnescape(stem)
}

func isUnreserved(c byte) bool {
	for i := 0; i < len(unreservedFilenameChars); i++ {
		if unreservedFilenameChars[i] == c {
			return true
		}
	}
	return false
}

func upperHex(nibble byte) byte {
	const hex = "0123456789ABCDEF"
	return hex[nibble]
}
