package core

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullIndex(t *testing.T) {
	assert.True(t, NullIndex.IsNull())
	assert.False(t, Index(0).IsNull())
	assert.Equal(t, Index(0xFFFFFFFE), MaxIndex)
}

func TestKindNames(t *testing.T) {
	for _, k := range append(Kinds(), Custom) {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("velocity")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKindTargets(t *testing.T) {
	tests := []struct {
		kind   Kind
		target ElementKind
		ok     bool
	}{
		{AdjacentVertices, Vertex, true},
		{VertexReferences, Vertex, true},
		{AdjacentFaces, Face, true},
		{AdjacentEdges, Edge, true},
		{Color, 0, false},
		{WedgeColors, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			target, ok := tt.kind.Target()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.ok, tt.kind.IsReference())
			if ok {
				assert.Equal(t, tt.target, target)
			}
		})
	}
	assert.True(t, WedgeTexCoords.IsList())
	assert.False(t, Normal.IsList())
}

func TestParseElementKind(t *testing.T) {
	k, err := ParseElementKind("faces")
	require.NoError(t, err)
	assert.Equal(t, Face, k)
	assert.Equal(t, "face", k.String())

	_, err = ParseElementKind("tetra")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlags(t *testing.T) {
	var f Flags
	f.SetSelected(true)
	f.SetUserBit(3, true)
	assert.True(t, f.Selected())
	assert.True(t, f.UserBit(3))
	assert.False(t, f.UserBit(2))

	f |= FlagDeleted
	f.Reset()
	assert.True(t, f.Deleted())
	assert.False(t, f.Selected())
	assert.False(t, f.UserBit(3))

	assert.Panics(t, func() { f.SetUserBit(NumUserBits, true) })
}

func TestFlagsVCG(t *testing.T) {
	var f Flags
	f.FromVCG(VCGSelected | VCGBorder0<<2)
	assert.True(t, f.Selected())
	assert.True(t, f.OnBorder())
	assert.False(t, f.Visited())

	assert.Equal(t, VCGSelected|VCGBorder0, f.ToVCG())
}

func TestErrors(t *testing.T) {
	var err error = &TypeMismatchError{Name: "mark", Registered: reflect.TypeFor[int](), Requested: reflect.TypeFor[float32]()}
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "int")
	assert.Contains(t, err.Error(), "float32")

	err = &IndexOutOfBoundsError{Index: 5, Len: 3}
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	var oob *IndexOutOfBoundsError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			require.True(t, errors.As(r.(error), &oob))
		}()
		CheckIndex(3, 3)
	}()
	assert.Equal(t, 3, oob.Index)
}
