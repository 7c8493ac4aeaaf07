package mesh_test

import (
	"testing"

	"github.com/hupe1980/meshcomp/comp"
	"github.com/hupe1980/meshcomp/core"
	"github.com/hupe1980/meshcomp/geom"
	"github.com/hupe1980/meshcomp/mesh"
	"github.com/hupe1980/meshcomp/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gridVertex struct {
	comp.Base
	comp.VerticalPosition
	comp.OptionalMark
}

type gridFace struct {
	comp.Base
	comp.VertexReferences[comp.Size3]
	comp.OptionalAdjacentFaces[comp.Size3]
}

func TestRandomCompaction(t *testing.T) {
	rng := testutil.NewRNG(42)

	for round := range 10 {
		m := mesh.New()
		vs := mesh.NewContainer[gridVertex](core.Vertex)
		fs := mesh.NewContainer[gridFace](core.Face)
		require.NoError(t, m.Register(vs))
		require.NoError(t, m.Register(fs))
		testutil.Grid(vs, fs, 5, 4)
		require.NoError(t, vs.EnableMark())

		before := make([]geom.Point3d, vs.Size())
		for i := range before {
			p, _ := comp.PositionOf(vs.Element(i))
			before[i] = *p
			mark, _ := comp.MarkOf(vs.Element(i))
			*mark = i
		}
		oldRefs := make([][]core.Index, fs.Size())
		for f := range oldRefs {
			l, _ := comp.VertexReferencesOf(fs.Element(f))
			oldRefs[f] = append([]core.Index(nil), l.Values()...)
		}

		newIndices := rng.CompactionMap(vs.Size(), 0.2)
		if round == 0 {
			newIndices = rng.Permutation(vs.Size())
		}
		require.NoError(t, vs.Compact(newIndices))

		for old, ni := range newIndices {
			if ni.IsNull() {
				continue
			}
			e := vs.Element(int(ni))
			p, _ := comp.PositionOf(e)
			assert.Equal(t, before[old], *p)
			mark, _ := comp.MarkOf(e)
			assert.Equal(t, old, *mark)
			idx, ok := e.Index()
			require.True(t, ok)
			assert.Equal(t, ni, idx)
		}

		for f, refs := range oldRefs {
			l, _ := comp.VertexReferencesOf(fs.Element(f))
			for j, r := range refs {
				assert.Equal(t, newIndices[r], l.At(j))
			}
		}
	}
}

func TestSizeCoherence(t *testing.T) {
	rng := testutil.NewRNG(3)
	vs := mesh.NewContainer[gridVertex](core.Vertex)
	require.NoError(t, vs.EnableMark())

	check := func() {
		t.Helper()
		for i := range vs.Size() {
			_, ok := comp.MarkOf(vs.Element(i))
			require.True(t, ok, "row %d", i)
			_, ok = comp.PositionOf(vs.Element(i))
			require.True(t, ok, "row %d", i)
		}
	}

	for range 50 {
		switch rng.Intn(4) {
		case 0:
			vs.AddN(rng.Intn(20))
		case 1:
			vs.Resize(rng.Intn(30))
		case 2:
			if vs.Size() > 0 {
				require.NoError(t, vs.Compact(rng.CompactionMap(vs.Size(), 0.3)))
			}
		case 3:
			vs.Reserve(rng.Intn(100))
		}
		check()
	}

	vs.Clear()
	assert.Equal(t, 0, vs.Size())
	assert.True(t, vs.IsMarkEnabled())
}
