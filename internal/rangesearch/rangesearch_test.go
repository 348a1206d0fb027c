package rangesearch

import (
	"testing"

	"github.com/iamNilotpal/docbase/pkg/collate"
)

type entry struct {
	key any
}

func (e entry) SearchKey() any { return e.key }

func ascending(keys ...any) []entry {
	out := make([]entry, len(keys))
	for i, k := range keys {
		out[i] = entry{key: k}
	}
	return out
}

func TestLeftmostRightmostAscending(t *testing.T) {
	cmp := collate.New()
	entries := ascending("a", "b", "b", "b", "c", "d")

	if got := LeftmostAscending(cmp, entries, "b"); got != 1 {
		t.Fatalf("LeftmostAscending(b) = %d, want 1", got)
	}
	if got := RightmostAscending(cmp, entries, "b"); got != 4 {
		t.Fatalf("RightmostAscending(b) = %d, want 4", got)
	}
	if got := LeftmostAscending(cmp, entries, "z"); got != len(entries) {
		t.Fatalf("LeftmostAscending(z) = %d, want %d", got, len(entries))
	}
	if got := LeftmostAscending(cmp, entries, "0"); got != 0 {
		t.Fatalf("LeftmostAscending(below all) = %d, want 0", got)
	}
}

func TestLeftmostRightmostDescending(t *testing.T) {
	cmp := collate.New()
	entries := ascending("d", "c", "b", "b", "b", "a")

	if got := LeftmostDescending(cmp, entries, "b"); got != 2 {
		t.Fatalf("LeftmostDescending(b) = %d, want 2", got)
	}
	if got := RightmostDescending(cmp, entries, "b"); got != 5 {
		t.Fatalf("RightmostDescending(b) = %d, want 5", got)
	}
}

func TestRangeInclusiveAscending(t *testing.T) {
	cmp := collate.New()
	entries := ascending("a", "b", "c", "d", "e")

	got := Range[entry](cmp, entries, "b", "d", false)
	if len(got) != 3 {
		t.Fatalf("Range[b,d] ascending returned %d entries, want 3", len(got))
	}
	for i, want := range []any{"b", "c", "d"} {
		if got[i].key != want {
			t.Fatalf("Range[b,d][%d] = %v, want %v", i, got[i].key, want)
		}
	}
}

func TestRangeInclusiveDescending(t *testing.T) {
	cmp := collate.New()
	entries := ascending("e", "d", "c", "b", "a")

	got := Range[entry](cmp, entries, "d", "b", true)
	if len(got) != 3 {
		t.Fatalf("Range[d,b] descending returned %d entries, want 3", len(got))
	}
	for i, want := range []any{"d", "c", "b"} {
		if got[i].key != want {
			t.Fatalf("Range[d,b][%d] = %v, want %v", i, got[i].key, want)
		}
	}
}

func TestRangeEmptyWhenOutOfBounds(t *testing.T) {
	cmp := collate.New()
	entries := ascending("a", "b", "c")

	got := Range[entry](cmp, entries, "x", "z", false)
	if len(got) != 0 {
		t.Fatalf("Range out of bounds returned %d entries, want 0", len(got))
	}
}
