package mesh

import "github.com/go-gl/mathgl/mgl32"

// RenderNormals devolve um canal de normais com uma normal por vértice.
// Se a malha trouxe normais completas elas são copiadas; caso contrário (ausentes ou só
// em parte das faces) cada triângulo recebe a normal da face, (b - a) x (c - a).
func (b *Buffer) RenderNormals() []float32 {
	n := b.VertexCount()
	if n == 0 {
		return nil
	}
	if len(b.normals) == n*NormalSize {
		return clone(b.normals)
	}

	out := make([]float32, 0, n*NormalSize)
	p := b.positions
	for i := 0; i+9 <= len(p); i += 9 {
		a := mgl32.Vec3{p[i], p[i+1], p[i+2]}
		e1 := mgl32.Vec3{p[i+3], p[i+4], p[i+5]}.Sub(a)
		e2 := mgl32.Vec3{p[i+6], p[i+7], p[i+8]}.Sub(a)

		normal := e1.Cross(e2)
		if l := normal.Len(); l > 0 {
			normal = normal.Mul(1 / l)
		} else {
			// Triângulo degenerado: aponta para cima para não escurecer
			normal = mgl32.Vec3{0, 1, 0}
		}
		for k := 0; k < 3; k++ {
			out = append(out, normal[0], normal[1], normal[2])
		}
	}
	return out
}
