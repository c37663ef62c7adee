package demoscene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobilert/internal/demoscene"
	"mobilert/pkg/core"
)

func TestBuildReturnsAllFourBuiltinScenes(t *testing.T) {
	for index := 0; index <= 3; index++ {
		built, err := demoscene.Build(index, 320, 240)
		require.NoError(t, err, "scene index %d", index)
		require.NotNil(t, built.Scene)
		require.NotNil(t, built.Camera)
		assert.Greater(t, built.Scene.PrimitiveCount(), 0, "scene index %d has no geometry", index)
		assert.NotEmpty(t, built.Scene.Lights, "scene index %d has no lights", index)
	}
}

func TestBuildRejectsOutOfRangeIndex(t *testing.T) {
	_, err := demoscene.Build(4, 320, 240)
	assert.Error(t, err)

	_, err = demoscene.Build(-1, 320, 240)
	assert.Error(t, err)
}

func TestBuiltinScenesAreHittableFromTheirCamera(t *testing.T) {
	for index := 0; index <= 3; index++ {
		built, err := demoscene.Build(index, 320, 240)
		require.NoError(t, err)

		ray := built.Camera.GenerateRay(0.5, 0.5, 0, 0)
		isect := built.Scene.Trace(core.NewIntersection(ray), ray)
		assert.True(t, isect.Hit(), "scene index %d: center ray from its own camera missed everything", index)
	}
}
