package bitmap

import (
	"bytes"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/meshcomp/core"
)

// Set is a set of rows.
type Set struct {
	rb *roaring.Bitmap
}

// New creates an empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Add adds a row.
func (s *Set) Add(i core.Index) { s.rb.Add(uint32(i)) }

// Contains reports whether a row is in the set.
func (s *Set) Contains(i core.Index) bool { return s.rb.Contains(uint32(i)) }

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool { return s.rb.IsEmpty() }

// Cardinality returns the number of rows in the set.
func (s *Set) Cardinality() int { return int(s.rb.GetCardinality()) }

// Clear removes all rows.
func (s *Set) Clear() { s.rb.Clear() }

// Iterator returns the rows in increasing order.
func (s *Set) Iterator() iter.Seq[core.Index] {
	return func(yield func(core.Index) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(core.Index(it.Next())) {
				return
			}
		}
	}
}

// Compact renumbers the rows with a compaction map. Removed rows leave the set.
func (s *Set) Compact(newIndices []core.Index) {
	out := roaring.New()
	it := s.rb.Iterator()
	for it.HasNext() {
		i := it.Next()
		if int(i) >= len(newIndices) {
			continue
		}
		if ni := newIndices[i]; !ni.IsNull() {
			out.Add(uint32(ni))
		}
	}
	s.rb = out
}

// Append adds the rows of other shifted by offset.
func (s *Set) Append(other *Set, offset core.Index) {
	it := other.rb.Iterator()
	for it.HasNext() {
		s.rb.Add(it.Next() + uint32(offset))
	}
}

// MarshalBinary encodes the set in the portable Roaring format.
func (s *Set) MarshalBinary() ([]byte, error) {
	s.rb.RunOptimize()
	return s.rb.ToBytes()
}

// UnmarshalBinary decodes a set written by MarshalBinary.
func (s *Set) UnmarshalBinary(data []byte) error {
	rb := roaring.New()
	if _, err := rb.ReadFrom(bytes.NewReader(data)); err != nil {
		return err
	}
	s.rb = rb
	return nil
}
