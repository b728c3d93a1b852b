package mesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNormalsFlat(t *testing.T) {
	// Quad no plano XZ com ordem anti-horária vista de cima: normal +Y.
	buf, err := Load(strings.NewReader("v 0 0 0\nv 0 0 1\nv 1 0 1\nv 1 0 0\nf 1 2 3 4\n"))
	require.NoError(t, err)
	require.False(t, buf.HasNormals())

	n := buf.RenderNormals()
	require.Len(t, n, 6*3)
	for i := 0; i < len(n); i += 3 {
		assert.InDelta(t, 0, n[i], 1e-6)
		assert.InDelta(t, 1, n[i+1], 1e-6)
		assert.InDelta(t, 0, n[i+2], 1e-6)
	}
}

func TestRenderNormalsKeepsAuthored(t *testing.T) {
	buf, err := Load(strings.NewReader(pentagonVerts + "vn 0 0 1\nf 1//1 2//1 3//1\n"))
	require.NoError(t, err)
	assert.Equal(t, buf.Normals(), buf.RenderNormals())
}

func TestRenderNormalsMixedAndDegenerate(t *testing.T) {
	// Uma face com normal e outra sem: canal incompleto, recalcula tudo.
	src := pentagonVerts + "vn 0 0 -1\nf 1//1 2//1 3//1\nf 1 1 2\n"
	buf, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	n := buf.RenderNormals()
	require.Len(t, n, 6*3)
	assert.InDelta(t, 1, n[2], 1e-6)              // Primeira face: (1,0,0) x (1,1,0) = +Z
	assert.Equal(t, []float32{0, 1, 0}, n[9:12]) // Segunda face degenerada

	assert.Nil(t, Empty().RenderNormals())
}
