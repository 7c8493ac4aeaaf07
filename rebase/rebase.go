// Package rebase implements the reference rebasing primitives used when a
// container compacts, shrinks or appends rows.
//
// References are row indices (core.Index), so moving the element storage
// never changes them; only renumbering does. A compaction map newIndices
// gives, for every old row i, its new row or core.NullIndex when the row is
// removed.
package rebase

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/meshcomp/core"
)

// Compact remaps every non-null reference r to newIndices[r]. References to
// removed rows, and references outside newIndices, become null.
func Compact(refs []core.Index, newIndices []core.Index) {
	for i, r := range refs {
		if r.IsNull() {
			continue
		}
		if int(r) >= len(newIndices) {
			refs[i] = core.NullIndex
			continue
		}
		refs[i] = newIndices[r]
	}
}

// Shift adds offset to every non-null reference. Containers use it after
// appending rows whose references point into appended rows.
func Shift(refs []core.Index, offset core.Index) {
	if offset == 0 {
		return
	}
	for i, r := range refs {
		if !r.IsNull() {
			refs[i] = r + offset
		}
	}
}

// Validate checks that newIndices is a compaction map for size rows: it has
// size entries and its surviving entries are a permutation of
// [0, survivors). It returns the number of survivors.
func Validate(newIndices []core.Index, size int) (int, error) {
	if len(newIndices) != size {
		return 0, fmt.Errorf("%w: got %d entries for %d rows", core.ErrInvalidIndices, len(newIndices), size)
	}
	survivors := 0
	for _, ni := range newIndices {
		if !ni.IsNull() {
			survivors++
		}
	}
	seen := bitset.New(uint(survivors))
	for i, ni := range newIndices {
		if ni.IsNull() {
			continue
		}
		if int(ni) >= survivors {
			return 0, fmt.Errorf("%w: row %d mapped to %d, only %d rows survive", core.ErrInvalidIndices, i, ni, survivors)
		}
		if seen.Test(uint(ni)) {
			return 0, fmt.Errorf("%w: row %d mapped to %d twice", core.ErrInvalidIndices, i, ni)
		}
		seen.Set(uint(ni))
	}
	return survivors, nil
}

// CompactIndices builds the order preserving compaction map that removes
// every row for which removed returns true.
func CompactIndices(size int, removed func(i int) bool) []core.Index {
	out := make([]core.Index, size)
	next := core.Index(0)
	for i := range out {
		if removed(i) {
			out[i] = core.NullIndex
			continue
		}
		out[i] = next
		next++
	}
	return out
}

// Truncate builds the compaction map that keeps the first n of size rows.
func Truncate(size, n int) []core.Index {
	return CompactIndices(size, func(i int) bool { return i >= n })
}

// IsIdentity reports whether newIndices keeps every row in place.
func IsIdentity(newIndices []core.Index) bool {
	for i, ni := range newIndices {
		if int(ni) != i {
			return false
		}
	}
	return true
}
