// Package query implements the sorted-range + pagination engine: turning a
// set of index entries and normalized query options into a page of results
// and an optional cursor for the next page.
package query

import (
	"slices"

	"github.com/iamNilotpal/docbase/internal/index"
	"github.com/iamNilotpal/docbase/internal/rangesearch"
	"github.com/iamNilotpal/docbase/pkg/collate"
	"github.com/iamNilotpal/docbase/pkg/options"
)

// Result is the outcome of a queryKeys/queryView call.
type Result struct {
	Items             []index.Entry
	ExclusiveEndIndex *int
}

// Run executes the shared query algorithm (§4.6): sort entries by
// IndexKey per opts.Descending, restrict to the inclusive [StartKey, EndKey]
// range, then paginate via InclusiveStartIndex/Limit. InclusiveStartIndex
// and the returned ExclusiveEndIndex are both expressed in the coordinate
// space of the full sorted list, not re-zeroed at the range's lower bound —
// so a cursor returned from one call can be fed back as
// InclusiveStartIndex on the next without adjustment, and a restricted
// range reports cursors consistent with an unbounded one over the same
// sorted list. opts must already be normalized (see
// options.QueryOptions.Normalize).
func Run(cmp *collate.Comparator, entries []index.Entry, opts options.QueryOptions) Result {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b index.Entry) int {
		if opts.Descending {
			return cmp.Compare(b.IndexKey, a.IndexKey)
		}
		return cmp.Compare(a.IndexKey, b.IndexKey)
	})

	lo, hi := rangesearch.Bounds(cmp, sorted, *opts.StartKey, *opts.EndKey, opts.Descending)
	sliced := sorted[lo:hi]

	start := opts.InclusiveStartIndex - lo
	if start < 0 {
		start = 0
	}
	if start >= len(sliced) {
		return Result{Items: []index.Entry{}, ExclusiveEndIndex: nil}
	}

	end := start + opts.Limit
	if end > len(sliced) {
		end = len(sliced)
	}

	page := sliced[start:end]

	items := make([]index.Entry, len(page))
	copy(items, page)

	var exclusiveEndIndex *int
	if end < len(sliced) {
		e := lo + end
		exclusiveEndIndex = &e
	}

	return Result{Items: items, ExclusiveEndIndex: exclusiveEndIndex}
}
