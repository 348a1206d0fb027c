// Package document defines the Document value docbase stores: an opaque
// tree of strings, numbers, booleans, nulls, sequences, and string-keyed
// mappings, carrying a reserved `_rev` revision field.
package document

import (
	"github.com/goccy/go-json"
)

// revField is the reserved revision field name the engine interprets;
// every other field is opaque to the core.
const revField = "_rev"

// Document is the in-memory representation of a stored record.
type Document map[string]any

// Clone returns a deep copy of d so callers at either side of a boundary
// crossing (read, write, view iteration) cannot mutate stored state through
// an alias.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	dst := make(Document, len(d))
	for k, v := range d {
		dst[k] = cloneValue(v)
	}
	return dst
}

func cloneValue(src any) any {
	switch v := src.(type) {
	case map[string]any:
		dst := make(map[string]any, len(v))
		for k, e := range v {
			dst[k] = cloneValue(e)
		}
		return dst
	case Document:
		return Document(cloneValue(map[string]any(v)).(map[string]any))
	case []any:
		dst := make([]any, len(v))
		for i, e := range v {
			dst[i] = cloneValue(e)
		}
		return dst
	default:
		return v
	}
}

// Rev returns the document's `_rev` field. Documents with a missing or
// non-numeric `_rev` are treated as revision 0 (the pre-first-write state).
func (d Document) Rev() int64 {
	raw, ok := d[revField]
	if !ok {
		return 0
	}
	switch v := raw.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// HasRev reports whether the document carries an explicit `_rev` field,
// distinguishing "caller omitted _rev" from "caller supplied _rev: 0".
func (d Document) HasRev() bool {
	_, ok := d[revField]
	return ok
}

// WithRev returns a copy of d with `_rev` set to rev.
func (d Document) WithRev(rev int64) Document {
	out := d.Clone()
	if out == nil {
		out = make(Document, 1)
	}
	out[revField] = rev
	return out
}

// Marshal serializes d as the on-disk textual body.
func Marshal(d Document) ([]byte, error) {
	return json.Marshal(map[string]any(d))
}

// Unmarshal parses the on-disk textual body into a Document.
func Unmarshal(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return d, nil
}
