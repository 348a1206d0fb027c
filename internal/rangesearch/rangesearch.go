// Package rangesearch implements the comparison-aware binary search used to
// turn a pre-sorted index entry list and a target key into the half-open
// slice bounds a range query needs.
package rangesearch

import "github.com/iamNilotpal/docbase/pkg/collate"

// Keyed is any slice element a search can compare by key.
type Keyed interface {
	SearchKey() any
}

// LeftmostAscending returns the smallest index i such that entries[i].Key >=
// target in an ascending-sorted list, or len(entries) if none exists.
func LeftmostAscending[T Keyed](cmp *collate.Comparator, entries []T, target any) int {
	left, right := 0, len(entries)
	for left < right {
		mid := left + (right-left)/2
		if cmp.Lt(entries[mid].SearchKey(), target) {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left
}

// RightmostAscending returns the smallest index i such that entries[i].Key >
// target in an ascending-sorted list, or len(entries) if none exists.
func RightmostAscending[T Keyed](cmp *collate.Comparator, entries []T, target any) int {
	left, right := 0, len(entries)
	for left < right {
		mid := left + (right-left)/2
		if cmp.Le(entries[mid].SearchKey(), target) {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left
}

// LeftmostDescending returns the smallest index i such that entries[i].Key
// <= target in a descending-sorted list, or len(entries) if none exists.
func LeftmostDescending[T Keyed](cmp *collate.Comparator, entries []T, target any) int {
	left, right := 0, len(entries)
	for left < right {
		mid := left + (right-left)/2
		if cmp.Gt(entries[mid].SearchKey(), target) {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left
}

// RightmostDescending returns the smallest index i such that entries[i].Key
// < target in a descending-sorted list, or len(entries) if none exists.
func RightmostDescending[T Keyed](cmp *collate.Comparator, entries []T, target any) int {
	left, right := 0, len(entries)
	for left < right {
		mid := left + (right-left)/2
		if cmp.Ge(entries[mid].SearchKey(), target) {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left
}

// Bounds returns the half-open [lo, hi) index range, expressed in entries'
// own coordinate space, of the keys falling within [startKey, endKey]
// inclusive. For an ascending-sorted list this is
// [LeftmostAscending(startKey), RightmostAscending(endKey)); for a
// descending-sorted list (descending=true) it is
// [LeftmostDescending(startKey), RightmostDescending(endKey)). Callers that
// need to report positions relative to the full list (e.g. a pagination
// cursor) must use lo/hi directly rather than re-basing against a slice.
func Bounds[T Keyed](cmp *collate.Comparator, entries []T, startKey, endKey any, descending bool) (lo, hi int) {
	if descending {
		lo = LeftmostDescending(cmp, entries, startKey)
		hi = RightmostDescending(cmp, entries, endKey)
	} else {
		lo = LeftmostAscending(cmp, entries, startKey)
		hi = RightmostAscending(cmp, entries, endKey)
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Range extracts the half-open slice of entries whose keys fall within
// [startKey, endKey] inclusive. See Bounds for the index semantics.
func Range[T Keyed](cmp *collate.Comparator, entries []T, startKey, endKey any, descending bool) []T {
	lo, hi := Bounds(cmp, entries, startKey, endKey, descending)
	return entries[lo:hi]
}
