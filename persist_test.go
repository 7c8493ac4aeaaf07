package meshcomp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/meshcomp/geom"
	"github.com/hupe1980/meshcomp/internal/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileKeepsPreviousOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.mcsn")
	m := quad(t)
	require.NoError(t, SaveFile(path, m.Mesh, nil))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	m.AddVertex(geom.P3(2.0, 2, 2))

	for name, fault := range map[string]fs.Fault{
		"write": {FailAfterBytes: 8},
		"sync":  {FailAfterBytes: -1, FailOnSync: true},
		"close": {FailAfterBytes: -1, FailOnClose: true},
	} {
		t.Run(name, func(t *testing.T) {
			ffs := fs.NewFaultyFS(nil)
			ffs.AddRule(".tmp", fault)

			err := saveFile(ffs, path, m.Mesh, nil)
			require.ErrorIs(t, err, fs.ErrInjected)
			assert.Zero(t, ffs.Renames())

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, before, after)

			_, err = os.Stat(path + ".tmp")
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestLoadFileThroughFileSystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.mcsn")
	m := quad(t)
	ffs := fs.NewFaultyFS(nil)
	require.NoError(t, saveFile(ffs, path, m.Mesh, nil))
	assert.Equal(t, 1, ffs.Renames())

	out, err := NewTriMesh()
	require.NoError(t, err)
	require.NoError(t, loadFile(ffs, path, out.Mesh, nil))
	assert.Equal(t, 4, out.Vertices.Size())
	assert.Equal(t, faceVertices(m, 1), faceVertices(out, 1))
}
