package rebase

import (
	"testing"

	"github.com/hupe1980/meshcomp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const null = core.NullIndex

func TestCompact(t *testing.T) {
	refs := []core.Index{0, 1, 2, null, 7}
	Compact(refs, []core.Index{0, null, 1})
	assert.Equal(t, []core.Index{0, null, 1, null, null}, refs)
}

func TestCompactNonMonotonic(t *testing.T) {
	newIndices := []core.Index{2, null, 0, 1}
	refs := []core.Index{0, 1, 2, 3}
	Compact(refs, newIndices)
	assert.Equal(t, []core.Index{2, null, 0, 1}, refs)
}

func TestShift(t *testing.T) {
	refs := []core.Index{0, null, 3}
	Shift(refs, 10)
	assert.Equal(t, []core.Index{10, null, 13}, refs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		newIndices []core.Index
		size       int
		survivors  int
		wantErr    bool
	}{
		{"valid", []core.Index{0, null, 1}, 3, 2, false},
		{"permutation", []core.Index{1, 0}, 2, 2, false},
		{"all removed", []core.Index{null, null}, 2, 0, false},
		{"wrong length", []core.Index{0}, 2, 0, true},
		{"out of range", []core.Index{0, 2, null}, 3, 0, true},
		{"duplicate", []core.Index{1, 1, 0}, 3, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Validate(tt.newIndices, tt.size)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidIndices)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.survivors, n)
		})
	}
}

func TestCompactIndices(t *testing.T) {
	deleted := map[int]bool{1: true, 3: true}
	got := CompactIndices(5, func(i int) bool { return deleted[i] })
	assert.Equal(t, []core.Index{0, null, 1, null, 2}, got)

	assert.Equal(t, []core.Index{0, 1, null}, Truncate(3, 2))
	assert.True(t, IsIdentity([]core.Index{0, 1, 2}))
	assert.False(t, IsIdentity(Truncate(3, 2)))
}
