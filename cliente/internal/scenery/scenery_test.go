package scenery

import (
	"testing"

	"VirtuaRacing/shared/route"
	"VirtuaRacing/shared/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seq devolve os valores em ordem, repetindo o último.
type seq struct {
	vals []float32
	i    int
}

func (s *seq) Float32() float32 {
	v := s.vals[min(s.i, len(s.vals)-1)]
	s.i++
	return v
}

func loop(n int) *route.Route {
	pts := make([]util.Vector3, n)
	for i := range pts {
		pts[i] = util.Vector3{float32(i % 5), float32(i) * 0.1, float32(i)}
	}
	return route.New(pts)
}

func TestGeneratePlacement(t *testing.T) {
	r := route.New([]util.Vector3{{0, 2, 0}, {0, 2, 10}})
	rng := &seq{vals: []float32{0.5, 0.5, 0.7, 0.5, 0.9}}

	f := Generate(r, DefaultParams(), rng)
	items := f.Items()
	require.Len(t, items, 2)

	// Frente +Z, perpendicular (-1, 0, 0).
	assert.Equal(t, Tree, items[0].Kind)
	assert.InDelta(t, -11.5, items[0].Position.X(), 1e-5)
	assert.Equal(t, float32(2), items[0].Position.Y())
	assert.InDelta(t, 0, items[0].Position.Z(), 1e-5)

	assert.Equal(t, Stand, items[1].Kind)
	assert.InDelta(t, 13, items[1].Position.X(), 1e-5)
}

func TestGenerateChancesAreStrict(t *testing.T) {
	r := route.New([]util.Vector3{{0, 0, 0}, {10, 0, 0}})
	p := DefaultParams()

	// Sorteio igual ao limite não coloca nada.
	f := Generate(r, p, &seq{vals: []float32{0.3, 0.6}})
	assert.Equal(t, 0, f.Len())

	// Lado esquerdo com sorteio de tipo igual ao limite vira árvore.
	f = Generate(r, p, &seq{vals: []float32{0.3, 0.9, 0, 0.5}})
	require.Equal(t, 1, f.Len())
	assert.Equal(t, Tree, f.Items()[0].Kind)
}

func TestGenerateDeterministic(t *testing.T) {
	r := loop(60)
	a := Generate(r, DefaultParams(), NewRand(42))
	b := Generate(r, DefaultParams(), NewRand(42))
	c := Generate(r, DefaultParams(), NewRand(43))

	assert.Equal(t, a.Items(), b.Items())
	assert.NotEmpty(t, a.Items())
	assert.NotEqual(t, a.Items(), c.Items())
}

func TestGenerateStride(t *testing.T) {
	r := loop(15)
	always := &seq{vals: []float32{0.99}}
	f := Generate(r, DefaultParams(), always)
	// Âncoras 0, 7 e 14; dois itens por âncora.
	assert.Equal(t, 6, f.Len())
}

func TestGenerateSkipsZeroLengthSegment(t *testing.T) {
	r := route.New([]util.Vector3{{1, 0, 1}, {1, 5, 1}, {4, 0, 1}})
	p := DefaultParams()
	p.Stride = 1
	f := Generate(r, p, &seq{vals: []float32{0.99}})

	// O primeiro segmento é vertical: só as âncoras 1 e 2 recebem itens.
	assert.Equal(t, 4, f.Len())
	for _, it := range f.Items() {
		assert.NotEqual(t, float32(1), it.Position.Z())
	}
}

func TestGenerateEmptyRoute(t *testing.T) {
	f := Generate(route.New(nil), DefaultParams(), NewRand(1))
	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.Visible(util.Vector3{}, 100))
}

func TestVisibleBoundary(t *testing.T) {
	f := NewField([]Item{
		{Position: util.Vector3{3, 50, 4}, Kind: Tree},
		{Position: util.Vector3{0, -20, 4.999}, Kind: Stand},
		{Position: util.Vector3{30, 0, 0}, Kind: Tree},
	})

	vis := f.Visible(util.Vector3{}, 5)
	require.Len(t, vis, 1)
	assert.Equal(t, Stand, vis[0].Kind)

	assert.Len(t, f.Visible(util.Vector3{}, 5.001), 2)
	assert.Empty(t, f.Visible(util.Vector3{}, 0))
}

func TestItemsReturnsCopy(t *testing.T) {
	f := NewField([]Item{{Kind: Tree}})
	items := f.Items()
	items[0].Kind = Stand
	assert.Equal(t, Tree, f.Items()[0].Kind)
}
