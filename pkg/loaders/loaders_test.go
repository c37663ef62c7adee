package loaders_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobilert/pkg/config"
	"mobilert/pkg/loaders"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOBJBuildsTrianglesAndFlipsX(t *testing.T) {
	dir := t.TempDir()
	objPath := writeFile(t, dir, "tri.obj", ""+
		"v 0 0 0\n"+
		"v 1 0 0\n"+
		"v 0 1 0\n"+
		"v 1 1 0\n"+
		"f 1 2 3\n"+
		"f 2 4 3\n")

	s, err := loaders.LoadOBJ(objPath, "")
	require.NoError(t, err)
	require.Len(t, s.Triangles, 2)

	// The first vertex is (0,0,0) -- flipped X is unobservable there, so
	// check the second vertex (1,0,0) became (-1,0,0).
	assert.InDelta(t, float32(-1), s.Triangles[0].B().X, 1e-5)
}

func TestLoadOBJAppliesMTLAndUsemtl(t *testing.T) {
	dir := t.TempDir()
	mtlPath := writeFile(t, dir, "tri.mtl", ""+
		"newmtl red\n"+
		"Kd 1 0 0\n")
	objPath := writeFile(t, dir, "tri.obj", ""+
		"mtllib tri.mtl\n"+
		"v 0 0 0\n"+
		"v 1 0 0\n"+
		"v 0 1 0\n"+
		"usemtl red\n"+
		"f 1 2 3\n")

	s, err := loaders.LoadOBJ(objPath, mtlPath)
	require.NoError(t, err)
	require.Len(t, s.Triangles, 1)
	require.Len(t, s.Materials, 1)
	assert.Equal(t, float32(1), s.Materials[0].Kd.X)
}

func TestLoadOBJRejectsZeroTriangleFile(t *testing.T) {
	dir := t.TempDir()
	objPath := writeFile(t, dir, "empty.obj", "v 0 0 0\n")

	_, err := loaders.LoadOBJ(objPath, "")
	require.Error(t, err)
	kind, ok := config.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, config.KindLoaderFailure, kind)
}

func TestLoadOBJMissingFileIsLoaderFailure(t *testing.T) {
	_, err := loaders.LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"), "")
	require.Error(t, err)
	kind, ok := config.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, config.KindLoaderFailure, kind)
}

func TestLoadOBJPolygonFaceFans(t *testing.T) {
	dir := t.TempDir()
	objPath := writeFile(t, dir, "quad.obj", ""+
		"v 0 0 0\n"+
		"v 1 0 0\n"+
		"v 1 1 0\n"+
		"v 0 1 0\n"+
		"f 1 2 3 4\n")

	s, err := loaders.LoadOBJ(objPath, "")
	require.NoError(t, err)
	assert.Len(t, s.Triangles, 2, "a quad face must fan into two triangles")
}

func TestLoadMTLParsesMaterialFields(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mat.mtl", ""+
		"newmtl glass\n"+
		"Kd 0.1 0.2 0.3\n"+
		"Ks 0.5 0.5 0.5\n"+
		"Tf 0.9 0.9 0.9\n"+
		"Ni 1.5\n"+
		"newmtl emitter\n"+
		"Ke 10 10 10\n")

	mats, err := loaders.LoadMTL(path)
	require.NoError(t, err)
	require.Contains(t, mats, "glass")
	require.Contains(t, mats, "emitter")

	glass := mats["glass"]
	assert.Equal(t, float32(0.1), glass.Kd.X)
	assert.Equal(t, float32(0.5), glass.Ks.X)
	assert.Equal(t, float32(0.9), glass.Kt.X)
	assert.Equal(t, float32(1.5), glass.RefractiveIdx)

	assert.True(t, mats["emitter"].IsLight())
}

func TestLoadMTLMissingFileIsLoaderFailure(t *testing.T) {
	_, err := loaders.LoadMTL(filepath.Join(t.TempDir(), "missing.mtl"))
	require.Error(t, err)
	kind, ok := config.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, config.KindLoaderFailure, kind)
}
