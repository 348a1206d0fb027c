package document

import "testing"

func TestCloneIsDeepAndIndependent(t *testing.T) {
	original := Document{
		"name": "Ada",
		"tags": []any{"engineer", "pioneer"},
		"address": map[string]any{
			"city": "London",
		},
	}

	clone := original.Clone()

	clone["name"] = "Changed"
	clone["tags"].([]any)[0] = "mutated"
	clone["address"].(map[string]any)["city"] = "Paris"

	if original["name"] != "Ada" {
		t.Fatalf("mutating clone leaked into original: name = %v", original["name"])
	}
	if original["tags"].([]any)[0] != "engineer" {
		t.Fatalf("mutating clone's slice leaked into original")
	}
	if original["address"].(map[string]any)["city"] != "London" {
		t.Fatalf("mutating clone's nested map leaked into original")
	}
}

func TestCloneNil(t *testing.T) {
	var d Document
	if clone := d.Clone(); clone != nil {
		t.Fatalf("Clone of nil Document should be nil, got %v", clone)
	}
}

func TestRevDefaultsToZero(t *testing.T) {
	d := Document{"name": "Ada"}
	if d.Rev() != 0 {
		t.Fatalf("Rev() of a document with no _rev = %d, want 0", d.Rev())
	}
	if d.HasRev() {
		t.Fatalf("HasRev() should be false when _rev is absent")
	}
}

func TestWithRevBumpsAndPreservesFields(t *testing.T) {
	d := Document{"name": "Ada"}
	next := d.WithRev(1)

	if next.Rev() != 1 {
		t.Fatalf("Rev() after WithRev(1) = %d, want 1", next.Rev())
	}
	if next["name"] != "Ada" {
		t.Fatalf("WithRev dropped unrelated fields")
	}
	if d.HasRev() {
		t.Fatalf("WithRev must not mutate the receiver")
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	d := Document{"name": "Ada", "age": float64(36), "_rev": int64(2)}

	body, err := Marshal(d)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	decoded, err := Unmarshal(body)
	if err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if decoded["name"] != "Ada" {
		t.Fatalf("round-tripped name = %v, want Ada", decoded["name"])
	}
	if decoded.Rev() != 2 {
		t.Fatalf("round-tripped Rev() = %d, want 2", decoded.Rev())
	}
}
