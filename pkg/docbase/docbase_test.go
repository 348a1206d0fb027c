package docbase

import (
	"context"
	"testing"

	"github.com/iamNilotpal/docbase/pkg/document"
	dberrors "github.com/iamNilotpal/docbase/pkg/errors"
	"github.com/iamNilotpal/docbase/pkg/options"
)

func newTestInstance(t *testing.T) *Instance {
	t.Helper()
	inst, err := NewInstance(context.Background(), "docbase-test", options.WithDirectory(t.TempDir()))
	if err != nil {
		t.Fatalf("NewInstance returned error: %v", err)
	}
	return inst
}

func TestSetAndGetItem(t *testing.T) {
	inst := newTestInstance(t)

	if _, err := inst.SetItem("doc:1", map[string]any{"name": "Ada"}); err != nil {
		t.Fatalf("SetItem returned error: %v", err)
	}

	got, err := inst.GetItem("doc:1")
	if err != nil {
		t.Fatalf("GetItem returned error: %v", err)
	}
	if got["name"] != "Ada" {
		t.Fatalf("GetItem = %+v, want name=Ada", got)
	}
}

func TestUpdateItemExistingRequiresExistence(t *testing.T) {
	inst := newTestInstance(t)

	_, err := inst.UpdateItemExisting("absent", func(existing document.Document) (document.Document, error) {
		t.Fatalf("fn should not be called when the document does not exist")
		return nil, nil
	})
	if err == nil || !dberrors.IsNotFoundError(err) {
		t.Fatalf("expected a NotFoundError, got %v", err)
	}
}

func TestUpdateItemExistingAppliesFnWhenPresent(t *testing.T) {
	inst := newTestInstance(t)
	inst.SetItem("doc:1", map[string]any{"count": int64(1)})

	got, err := inst.UpdateItemExisting("doc:1", func(existing document.Document) (document.Document, error) {
		existing["count"] = existing["count"].(int64) + 1
		return existing, nil
	})
	if err != nil {
		t.Fatalf("UpdateItemExisting returned error: %v", err)
	}
	if got["count"] != int64(2) {
		t.Fatalf("UpdateItemExisting did not apply fn, got %v", got["count"])
	}
}

func TestDeleteItemReturnsKey(t *testing.T) {
	inst := newTestInstance(t)
	inst.SetItem("doc:1", map[string]any{"name": "Ada"})

	key, err := inst.DeleteItem("doc:1")
	if err != nil || key != "doc:1" {
		t.Fatalf("DeleteItem = (%q, %v), want (doc:1, nil)", key, err)
	}
}

func TestCloseThenOperationsFail(t *testing.T) {
	inst := newTestInstance(t)
	if err := inst.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if _, err := inst.GetItem("doc:1"); err == nil {
		t.Fatalf("expected GetItem to fail after Close")
	}
}
