package mesh

import (
	"io"
	"strings"

	"VirtuaRacing/shared/pkg/objtext"
)

// builder acumula os streams independentes (v, vt, vn) e o buffer expandido de saída.
type builder struct {
	tmpPositions []float32
	tmpUVs       []float32
	tmpNormals   []float32

	out Buffer
}

// Load lê uma malha .obj. Faces com mais de 3 vértices são trianguladas em leque a partir
// do primeiro vértice, e cada vértice de cada triângulo é resolvido e copiado para o buffer
// (UVs por face quebram o compartilhamento ingênuo de índices).
//
// Em caso de erro retorna Empty() junto com um *objtext.ParseError ou *objtext.IndexError.
func Load(r io.Reader) (*Buffer, error) {
	b := &builder{}
	if err := objtext.Scan(r, b.record); err != nil {
		return Empty(), err
	}
	out := b.out
	return &out, nil
}

func (b *builder) record(rec objtext.Record) error {
	switch rec.Kind {
	case objtext.KindPosition:
		f, err := rec.Floats(3)
		if err != nil {
			return err
		}
		b.tmpPositions = append(b.tmpPositions, f...)
	case objtext.KindTexCoord:
		f, err := rec.Floats(2)
		if err != nil {
			return err
		}
		// Blender usa origem embaixo-esquerda, a imagem carregada usa em cima-esquerda
		b.tmpUVs = append(b.tmpUVs, f[0], 1-f[1])
	case objtext.KindNormal:
		f, err := rec.Floats(3)
		if err != nil {
			return err
		}
		b.tmpNormals = append(b.tmpNormals, f...)
	case objtext.KindFace:
		return b.face(rec)
	}
	return nil
}

// face triangula em leque: {v0, v1, v2}, {v0, v2, v3}, ...
func (b *builder) face(rec objtext.Record) error {
	n := len(rec.Fields)
	if n < 3 {
		return &objtext.ParseError{Line: rec.Line, Kind: rec.Kind, Reason: "face precisa de ao menos 3 vértices"}
	}

	// Resolve todos os vértices antes de emitir, para não deixar triângulos parciais
	verts := make([]vertex, n)
	for i, ref := range rec.Fields {
		v, err := b.resolve(rec, ref)
		if err != nil {
			return err
		}
		verts[i] = v
	}

	for i := 1; i < n-1; i++ {
		b.emit(verts[0])
		b.emit(verts[i])
		b.emit(verts[i+1])
	}
	return nil
}

type vertex struct {
	pos       [3]float32
	uv        [2]float32
	normal    [3]float32
	hasNormal bool
}

// resolve interpreta "p", "p/t", "p//n" ou "p/t/n".
func (b *builder) resolve(rec objtext.Record, ref string) (vertex, error) {
	var v vertex
	parts := strings.Split(ref, "/")
	if len(parts) > 3 || parts[0] == "" {
		return v, &objtext.ParseError{Line: rec.Line, Kind: rec.Kind, Token: ref, Reason: "referência de vértice inválida"}
	}

	pi, err := objtext.Index(rec, "posição", parts[0], len(b.tmpPositions)/3)
	if err != nil {
		return v, err
	}
	copy(v.pos[:], b.tmpPositions[pi*3:pi*3+3])

	// Textura (pode estar vazia em "v//vn"). Sem textura: (0,0)
	if len(parts) > 1 && parts[1] != "" {
		ti, err := objtext.Index(rec, "textura", parts[1], len(b.tmpUVs)/2)
		if err != nil {
			return v, err
		}
		copy(v.uv[:], b.tmpUVs[ti*2:ti*2+2])
	}

	if len(parts) > 2 && parts[2] != "" {
		ni, err := objtext.Index(rec, "normal", parts[2], len(b.tmpNormals)/3)
		if err != nil {
			return v, err
		}
		copy(v.normal[:], b.tmpNormals[ni*3:ni*3+3])
		v.hasNormal = true
	}
	return v, nil
}

func (b *builder) emit(v vertex) {
	b.out.positions = append(b.out.positions, v.pos[:]...)
	b.out.uvs = append(b.out.uvs, v.uv[:]...)
	if v.hasNormal {
		b.out.normals = append(b.out.normals, v.normal[:]...)
	}
}
