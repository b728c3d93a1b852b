package mesh

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Campos do formato binário (wire format protobuf, canais como fixed32 empacotados).
const (
	fieldPositions protowire.Number = 1
	fieldNormals   protowire.Number = 2
	fieldUVs       protowire.Number = 3
)

// MarshalBinary serializa o buffer para o cache de assets.
func (b *Buffer) MarshalBinary() ([]byte, error) {
	if b == nil {
		return nil, errors.New("buffer nulo")
	}
	out := make([]byte, 0, 4*(len(b.positions)+len(b.normals)+len(b.uvs))+16)
	out = appendChannel(out, fieldPositions, b.positions)
	out = appendChannel(out, fieldNormals, b.normals)
	out = appendChannel(out, fieldUVs, b.uvs)
	return out, nil
}

func appendChannel(out []byte, num protowire.Number, data []float32) []byte {
	if len(data) == 0 {
		return out
	}
	packed := make([]byte, 0, 4*len(data))
	for _, f := range data {
		packed = protowire.AppendFixed32(packed, math.Float32bits(f))
	}
	out = protowire.AppendTag(out, num, protowire.BytesType)
	return protowire.AppendBytes(out, packed)
}

// UnmarshalBinary reconstrói um buffer serializado por MarshalBinary.
// Campos desconhecidos são ignorados; canais com tamanhos inconsistentes são rejeitados.
func (b *Buffer) UnmarshalBinary(data []byte) error {
	var decoded Buffer
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("tag inválida: %w", protowire.ParseError(n))
		}
		data = data[n:]

		var target *[]float32
		switch num {
		case fieldPositions:
			target = &decoded.positions
		case fieldNormals:
			target = &decoded.normals
		case fieldUVs:
			target = &decoded.uvs
		}

		if target == nil || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("campo %d inválido: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		packed, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return fmt.Errorf("canal %d inválido: %w", num, protowire.ParseError(n))
		}
		data = data[n:]

		values, err := consumeFloats(packed)
		if err != nil {
			return fmt.Errorf("canal %d: %w", num, err)
		}
		*target = append(*target, values...)
	}

	if err := decoded.validate(); err != nil {
		return err
	}
	*b = decoded
	return nil
}

func consumeFloats(packed []byte) ([]float32, error) {
	if len(packed)%4 != 0 {
		return nil, fmt.Errorf("tamanho %d não é múltiplo de 4", len(packed))
	}
	out := make([]float32, 0, len(packed)/4)
	for len(packed) > 0 {
		v, n := protowire.ConsumeFixed32(packed)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		out = append(out, math.Float32frombits(v))
		packed = packed[n:]
	}
	return out, nil
}

func (b *Buffer) validate() error {
	verts := len(b.positions) / PositionSize
	if len(b.positions)%(PositionSize*3) != 0 {
		return fmt.Errorf("canal de posições com %d floats não forma triângulos", len(b.positions))
	}
	if len(b.uvs) != verts*UVSize {
		return fmt.Errorf("canal de UVs com %d floats, esperados %d", len(b.uvs), verts*UVSize)
	}
	if len(b.normals)%NormalSize != 0 || len(b.normals) > verts*NormalSize {
		return fmt.Errorf("canal de normais com %d floats inválido para %d vértices", len(b.normals), verts)
	}
	return nil
}
