// Package scenery posiciona árvores e arquibancadas ao longo da rota e responde quais estão
// perto o bastante do jogador para serem desenhadas.
package scenery

import (
	"math/rand/v2"

	"VirtuaRacing/shared/route"
	"VirtuaRacing/shared/util"

	"github.com/chewxy/math32"
)

// Kind identifica o modelo usado por um item.
type Kind int

const (
	Tree Kind = iota
	Stand
)

func (k Kind) String() string {
	if k == Stand {
		return "stand"
	}
	return "tree"
}

// Item é imutável depois de gerado.
type Item struct {
	Position util.Vector3
	Kind     Kind
}

// Rand é a fonte de aleatoriedade injetada. *rand.Rand satisfaz a interface.
type Rand interface {
	Float32() float32
}

// NewRand cria um gerador determinístico: mesma semente, mesmo cenário.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Params controla a densidade e o afastamento dos itens.
type Params struct {
	Stride      int     // Um ponto de ancoragem a cada Stride waypoints
	RightChance float32 // Item à direita quando o sorteio passa deste valor
	RightMin    float32
	RightSpread float32
	LeftChance  float32
	LeftMin     float32
	LeftSpread  float32
	StandChance float32 // À esquerda, arquibancada quando o sorteio passa deste valor
}

// DefaultParams retorna a distribuição padrão.
func DefaultParams() Params {
	return Params{
		Stride:      7,
		RightChance: 0.3,
		RightMin:    7,
		RightSpread: 9,
		LeftChance:  0.6,
		LeftMin:     8,
		LeftSpread:  10,
		StandChance: 0.5,
	}
}

// Field é o conjunto de itens gerado para uma rota.
type Field struct {
	items []Item
}

// NewField cria um campo a partir de itens prontos (cópia).
func NewField(items []Item) *Field {
	cp := make([]Item, len(items))
	copy(cp, items)
	return &Field{items: cp}
}

// Generate percorre a rota e sorteia itens nos dois lados da pista.
// Segmentos de comprimento horizontal zero não recebem itens.
func Generate(r *route.Route, p Params, rng Rand) *Field {
	f := &Field{}
	n := r.Len()
	if n == 0 || rng == nil {
		return f
	}
	stride := p.Stride
	if stride < 1 {
		stride = 1
	}

	for i := 0; i < n; i += stride {
		cur := r.PointAt(i)
		next := r.PointAt(i + 1)

		dx := next.X() - cur.X()
		dz := next.Z() - cur.Z()
		length := math32.Sqrt(dx*dx + dz*dz)
		if length == 0 {
			continue
		}
		dx /= length
		dz /= length
		perp := util.Vector3{-dz, 0, dx}

		if rng.Float32() > p.RightChance {
			dist := p.RightMin + rng.Float32()*p.RightSpread
			f.items = append(f.items, Item{Position: place(cur, perp, dist), Kind: Tree})
		}

		if rng.Float32() > p.LeftChance {
			dist := -(p.LeftMin + rng.Float32()*p.LeftSpread)
			kind := Tree
			if rng.Float32() > p.StandChance {
				kind = Stand
			}
			f.items = append(f.items, Item{Position: place(cur, perp, dist), Kind: kind})
		}
	}
	return f
}

// place desloca lateralmente mantendo a altura do waypoint.
func place(anchor, perp util.Vector3, dist float32) util.Vector3 {
	return util.Vector3{anchor.X() + perp.X()*dist, anchor.Y(), anchor.Z() + perp.Z()*dist}
}

// Len retorna o número de itens.
func (f *Field) Len() int {
	if f == nil {
		return 0
	}
	return len(f.items)
}

// Items retorna uma cópia de todos os itens.
func (f *Field) Items() []Item {
	if f == nil {
		return nil
	}
	return NewField(f.items).items
}

// Visible retorna os itens cuja distância horizontal ao ponto de referência é estritamente
// menor que radius. Compara distâncias ao quadrado.
func (f *Field) Visible(ref util.Vector3, radius float32) []Item {
	if f == nil || radius <= 0 {
		return nil
	}
	limit := radius * radius
	var out []Item
	for _, it := range f.items {
		if util.DistSqXZ(it.Position, ref) < limit {
			out = append(out, it)
		}
	}
	return out
}
