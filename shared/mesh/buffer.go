// Package mesh converte descrições .obj em buffers planos de triângulos, prontos para
// draw calls não indexadas.
package mesh

// Floats por vértice em cada canal.
const (
	PositionSize = 3
	NormalSize   = 3
	UVSize       = 2
)

// Buffer contém canais paralelos de vértices já expandidos (sem índices compartilhados).
// É imutável após o carregamento e pode ser compartilhado entre vários leitores.
type Buffer struct {
	positions []float32
	normals   []float32 // Vazio se a malha não define normais
	uvs       []float32
}

// Empty retorna um buffer sem triângulos (usado quando o carregamento falha).
func Empty() *Buffer {
	return &Buffer{}
}

// VertexCount retorna o número de vértices emitidos (3 por triângulo).
func (b *Buffer) VertexCount() int {
	if b == nil {
		return 0
	}
	return len(b.positions) / PositionSize
}

// TriangleCount retorna o número de triângulos.
func (b *Buffer) TriangleCount() int {
	return b.VertexCount() / 3
}

// HasNormals indica se o canal de normais está presente.
func (b *Buffer) HasNormals() bool {
	return b != nil && len(b.normals) > 0
}

// Positions retorna uma cópia do canal de posições (x, y, z por vértice).
func (b *Buffer) Positions() []float32 {
	if b == nil {
		return nil
	}
	return clone(b.positions)
}

// Normals retorna uma cópia do canal de normais, ou nil se ausente.
func (b *Buffer) Normals() []float32 {
	if b == nil {
		return nil
	}
	return clone(b.normals)
}

// UVs retorna uma cópia do canal de coordenadas de textura (u, v por vértice).
func (b *Buffer) UVs() []float32 {
	if b == nil {
		return nil
	}
	return clone(b.uvs)
}

func clone(src []float32) []float32 {
	if len(src) == 0 {
		return nil
	}
	out := make([]float32, len(src))
	copy(out, src)
	return out
}
