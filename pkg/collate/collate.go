// Package collate provides the total-order comparator docbase sorts index
// entries with: locale-aware Unicode collation whenever either operand is
// textual, natural ordering otherwise.
package collate

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ALPHA sorts at-or-below every realistic key.
const ALPHA = "\u0000"

// OMEGA sorts at-or-above every realistic key.
const OMEGA = "\uFFFF"

// TypeBounds composes the typed-key range bounds for every document of a
// given type, e.g. TypeBounds("User") returns the type-prefixed bounds.
func TypeBounds(typeName string) (lo, hi string) {
	return typeName + "__" + ALPHA, typeName + "__" + OMEGA
}

// Comparator is a total order over arbitrary index key values. It is safe
// for concurrent use: the underlying collator keeps per-call iterator state,
// so textual comparisons are serialized by a mutex.
type Comparator struct {
	mu  sync.Mutex
	col *collate.Collator
}

// New builds a Comparator using the default (root) Unicode collation.
func New() *Comparator {
	return &Comparator{col: collate.New(language.Und)}
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than
// b. If either operand is textual, both are compared as text under the
// configured collation. Otherwise natural ordering is used: numeric types
// compare by value, booleans false < true, times by chronological order.
func (c *Comparator) Compare(a, b any) int {
	as, aIsText := a.(string)
	bs, bIsText := b.(string)
	if aIsText || bIsText {
		if !aIsText {
			as = toText(a)
		}
		if !bIsText {
			bs = toText(b)
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.col.CompareString(as, bs)
	}
	return compareNatural(a, b)
}

// Lt reports whether a < b.
func (c *Comparator) Lt(a, b any) bool { return c.Compare(a, b) < 0 }

// Le reports whether a <= b.
func (c *Comparator) Le(a, b any) bool { return c.Compare(a, b) <= 0 }

// Gt reports whether a > b.
func (c *Comparator) Gt(a, b any) bool { return c.Compare(a, b) > 0 }

// Ge reports whether a >= b.
func (c *Comparator) Ge(a, b any) bool { return c.Compare(a, b) >= 0 }

// toText renders a non-textual operand as text for comparison against a
// textual one.
func toText(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return fmt.Sprint(v)
}

// compareNatural orders two non-textual operands by their own type's
// natural order. Numeric kinds (including mixed int/float) compare by
// value; booleans treat false < true; times compare chronologically.
// Operands of incomparable types fall back to textual rendering so the
// comparator never panics.
func compareNatural(a, b any) int {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			switch {
			case ab == bb:
				return 0
			case !ab && bb:
				return -1
			default:
				return 1
			}
		}
	}

	return compareText(a, b)
}

func compareText(a, b any) int {
	as, bs := toText(a), toText(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

// asFloat reports whether v is a numeric kind and its float64 value.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
