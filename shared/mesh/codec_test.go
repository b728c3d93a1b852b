package mesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestCodecPreservesChannels(t *testing.T) {
	src := pentagonVerts + "vt 0.1 0.2\nvn 0 1 0\nf 1/1/1 2/1/1 3/1/1 4/1/1 5/1/1\n"
	buf, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	data, err := buf.MarshalBinary()
	require.NoError(t, err)

	var got Buffer
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, buf.Positions(), got.Positions())
	assert.Equal(t, buf.Normals(), got.Normals())
	assert.Equal(t, buf.UVs(), got.UVs())
	assert.Equal(t, 3, got.TriangleCount())
}

func TestCodecSkipsUnknownFields(t *testing.T) {
	buf, err := Load(strings.NewReader(pentagonVerts + "f 1 2 3\n"))
	require.NoError(t, err)
	data, err := buf.MarshalBinary()
	require.NoError(t, err)

	data = protowire.AppendTag(data, 15, protowire.VarintType)
	data = protowire.AppendVarint(data, 42)

	var got Buffer
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, 1, got.TriangleCount())
	assert.False(t, got.HasNormals())
}

func TestCodecRejectsInconsistentChannels(t *testing.T) {
	bad := &Buffer{
		positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		uvs:       []float32{0, 0},
	}
	data, err := bad.MarshalBinary()
	require.NoError(t, err)

	var got Buffer
	assert.Error(t, got.UnmarshalBinary(data))

	assert.Error(t, got.UnmarshalBinary([]byte{0x0a, 0x05, 1, 2, 3}))
}

func TestCodecEmpty(t *testing.T) {
	data, err := Empty().MarshalBinary()
	require.NoError(t, err)
	assert.Empty(t, data)

	var got Buffer
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, 0, got.TriangleCount())
}
