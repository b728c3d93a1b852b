package mesh

import (
	"strings"
	"testing"

	"VirtuaRacing/shared/pkg/objtext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pentagonVerts = `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v -1 0.5 0
`

func TestFanTriangulationCounts(t *testing.T) {
	tests := []struct {
		name string
		face string
		want int
	}{
		{"triângulo", "f 1 2 3", 1},
		{"quad", "f 1 2 3 4", 2},
		{"pentágono", "f 1 2 3 4 5", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Load(strings.NewReader(pentagonVerts + tt.face + "\n"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.TriangleCount())
			assert.Equal(t, tt.want*3, buf.VertexCount())
			assert.Len(t, buf.Positions(), tt.want*9)
			assert.Len(t, buf.UVs(), tt.want*6)
		})
	}
}

func TestFanOrderSharesFirstVertex(t *testing.T) {
	buf, err := Load(strings.NewReader(pentagonVerts + "f 1 2 3 4\n"))
	require.NoError(t, err)

	want := []float32{
		0, 0, 0, 1, 0, 0, 1, 1, 0, // {v0, v1, v2}
		0, 0, 0, 1, 1, 0, 0, 1, 0, // {v0, v2, v3}
	}
	assert.Equal(t, want, buf.Positions())
}

func TestTextureCoordinates(t *testing.T) {
	src := pentagonVerts + `vt 0.25 0.25
vt 1 0
f 1/1 2//  3/2
`
	buf, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	// V invertido na leitura; textura vazia vira (0,0)
	assert.Equal(t, []float32{0.25, 0.75, 0, 0, 1, 1}, buf.UVs())
	assert.False(t, buf.HasNormals())
	assert.Nil(t, buf.Normals())
}

func TestNormalsPassthrough(t *testing.T) {
	src := pentagonVerts + `vn 0 0 1
vn 0 1 0
f 1//1 2//1 3//2 4//2
`
	buf, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, buf.HasNormals())
	assert.Len(t, buf.Normals(), buf.VertexCount()*3)
	assert.Equal(t, []float32{0, 0, 1}, buf.Normals()[:3])
	assert.Equal(t, []float32{0, 1, 0}, buf.Normals()[15:18])
}

func TestNegativeIndices(t *testing.T) {
	buf, err := Load(strings.NewReader(pentagonVerts + "f -3 -2 -1\n"))
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, 0, 0, 1, 0, -1, 0.5, 0}, buf.Positions())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		indexErr bool
	}{
		{"número inválido", "v 0 0 zero\n", false},
		{"vértice curto", "v 0 0\n", false},
		{"uv curto", "vt 0.5\n", false},
		{"face curta", pentagonVerts + "f 1 2\n", false},
		{"posição vazia", pentagonVerts + "f 1 /1 3\n", false},
		{"índice não numérico", pentagonVerts + "f 1 2 a\n", false},
		{"posição fora do intervalo", pentagonVerts + "f 1 2 6\n", true},
		{"índice zero", pentagonVerts + "f 0 1 2\n", true},
		{"textura inexistente", pentagonVerts + "f 1/1 2 3\n", true},
		{"normal inexistente", pentagonVerts + "vn 0 1 0\nf 1//2 2 3\n", true},
		{"referência adiantada", "v 0 0 0\nv 1 0 0\nf 1 2 3\nv 0 1 0\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Load(strings.NewReader(tt.src))
			require.Error(t, err)
			require.NotNil(t, buf)
			assert.Equal(t, 0, buf.TriangleCount())

			if tt.indexErr {
				var ierr *objtext.IndexError
				assert.ErrorAs(t, err, &ierr)
			} else {
				var perr *objtext.ParseError
				assert.ErrorAs(t, err, &perr)
			}
		})
	}
}

func TestUnknownRecordsIgnored(t *testing.T) {
	src := "mtllib road.mtl\no Road\ns off\nusemtl Atlas\n" + pentagonVerts + "g grp\nf 1 2 3\n"
	buf, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, buf.TriangleCount())
}

func TestAccessorsReturnCopies(t *testing.T) {
	buf, err := Load(strings.NewReader(pentagonVerts + "f 1 2 3\n"))
	require.NoError(t, err)

	p := buf.Positions()
	p[0] = 99
	assert.Equal(t, float32(0), buf.Positions()[0])
}

func TestNilAndEmptyBuffer(t *testing.T) {
	var b *Buffer
	assert.Equal(t, 0, b.TriangleCount())
	assert.False(t, b.HasNormals())
	assert.Nil(t, b.Positions())
	assert.Equal(t, 0, Empty().VertexCount())
}
