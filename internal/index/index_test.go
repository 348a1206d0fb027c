package index

import (
	"testing"

	dberrors "github.com/iamNilotpal/docbase/pkg/errors"
)

type byTag struct{}

func (byTag) Map(doc map[string]any, emit Emit) error {
	tags, ok := doc["tags"].([]any)
	if !ok {
		return nil
	}
	for _, tag := range tags {
		emit(tag, doc["name"])
	}
	return nil
}

func TestIndexAllOneToMany(t *testing.T) {
	docs := map[string]map[string]any{
		"doc:1": {"name": "Ada", "tags": []any{"engineer", "pioneer"}},
		"doc:2": {"name": "Grace", "tags": []any{"engineer"}},
	}

	entries, err := IndexAll("byTag", byTag{}, docs, false)
	if err != nil {
		t.Fatalf("IndexAll returned error: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 emitted entries (one doc emits twice), got %d", len(entries))
	}

	for _, e := range entries {
		if e.Document != nil {
			t.Fatalf("IncludeDocuments=false but entry carries a document: %+v", e)
		}
	}
}

func TestIndexAllIncludesDocuments(t *testing.T) {
	docs := map[string]map[string]any{
		"doc:1": {"name": "Ada", "tags": []any{"engineer"}},
	}

	entries, err := IndexAll("byTag", byTag{}, docs, true)
	if err != nil {
		t.Fatalf("IndexAll returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Document == nil {
		t.Fatalf("expected one entry carrying its document, got %+v", entries)
	}
}

type failingView struct{}

func (failingView) Map(doc map[string]any, emit Emit) error {
	return errViewBoom
}

var errViewBoom = &boomError{}

type boomError struct{}

func (*boomError) Error() string { return "boom" }

func TestIndexAllWrapsViewError(t *testing.T) {
	docs := map[string]map[string]any{"doc:1": {"name": "Ada"}}

	_, err := IndexAll("broken", failingView{}, docs, false)
	if err == nil {
		t.Fatalf("expected IndexAll to propagate the view's error")
	}
	if ve, ok := dberrors.AsViewError(err); !ok || ve.ViewName() != "broken" {
		t.Fatalf("expected a ViewError naming view broken, got %v", err)
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("byTag"); ok {
		t.Fatalf("Lookup on an empty registry should miss")
	}

	r.Register("byTag", byTag{})
	view, ok := r.Lookup("byTag")
	if !ok || view == nil {
		t.Fatalf("Lookup after Register should hit")
	}
}

func TestEntrySearchKey(t *testing.T) {
	e := Entry{IndexKey: "k"}
	if e.SearchKey() != "k" {
		t.Fatalf("SearchKey() = %v, want k", e.SearchKey())
	}
}
