package kinematics

import (
	"testing"

	"VirtuaRacing/shared/route"
	"VirtuaRacing/shared/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(offset util.Vector3) *route.Route {
	pts := []util.Vector3{
		{0, 0, 0},
		{10, 0, 0},
		{10, 0, 10},
		{0, 0, 10},
	}
	for i := range pts {
		pts[i] = pts[i].Add(offset)
	}
	return route.New(pts)
}

func TestSampleExactAtWaypoints(t *testing.T) {
	r := route.New([]util.Vector3{{0.1, 0.2, 0.3}, {7.7, 1.1, -3.3}, {-2.5, 0, 9.9}})
	for i := 0; i < r.Len(); i++ {
		st := Sample(r, float32(i), 0, DefaultTuning())
		assert.Equal(t, r.PointAt(i), st.Position, "waypoint %d", i)
	}
}

func TestSampleInterpolatesAndHeading(t *testing.T) {
	r := square(util.Vector3{})

	st := Sample(r, 0.5, 0, DefaultTuning())
	assert.InDelta(t, 5, st.Position.X(), 1e-5)
	assert.InDelta(t, 0, st.Position.Z(), 1e-5)
	assert.InDelta(t, 90, st.Heading, 1e-4)

	st = Sample(r, 1.25, 0, DefaultTuning())
	assert.InDelta(t, 10, st.Position.X(), 1e-5)
	assert.InDelta(t, 2.5, st.Position.Z(), 1e-5)
	assert.InDelta(t, 0, st.Heading, 1e-4)
}

func TestHeadingTranslationInvariant(t *testing.T) {
	base := square(util.Vector3{})
	moved := square(util.Vector3{100, 5, -50})

	for _, p := range []float32{0, 0.5, 1, 2.75, 3.5} {
		a := Sample(base, p, 3, DefaultTuning())
		b := Sample(moved, p, 3, DefaultTuning())
		assert.InDelta(t, a.Heading, b.Heading, 1e-4, "progress %v", p)
		assert.InDelta(t, a.Steering, b.Steering, 1e-4, "progress %v", p)
	}
}

func TestSteeringStaysWithinClamp(t *testing.T) {
	// Dois pontos: cada segmento é uma curva de 180 graus.
	uturn := route.New([]util.Vector3{{0, 0, 0}, {0, 0, 10}})
	zigzag := route.New([]util.Vector3{{0, 0, 0}, {10, 0, 1}, {0, 0, 2}, {10, 0, 3}, {-4, 0, -20}})

	for _, r := range []*route.Route{uturn, zigzag} {
		v := New(0, DefaultTuning())
		for i := 0; i < 500; i++ {
			st := v.Advance(r, 0.37)
			assert.LessOrEqual(t, st.Steering, float32(50))
			assert.GreaterOrEqual(t, st.Steering, float32(-50))
		}
	}

	// Mesmo com um valor anterior absurdo o resultado é limitado.
	st := Sample(uturn, 0, 1000, DefaultTuning())
	assert.Equal(t, float32(50), st.Steering)
	st = Sample(uturn, 0, -1000, DefaultTuning())
	assert.Equal(t, float32(-50), st.Steering)
}

func TestSteeringLowPass(t *testing.T) {
	r := square(util.Vector3{})
	// Em 0.5 o próximo segmento vira 90 graus: alvo 90*7.5 limitado a 50, filtrado para 10.
	st := Sample(r, 0.5, 0, DefaultTuning())
	assert.InDelta(t, 10, absf(st.Steering), 1e-4)

	st2 := Sample(r, 0.5, st.Steering, DefaultTuning())
	assert.InDelta(t, 18, absf(st2.Steering), 1e-4)
}

func TestSquareRouteReturnsToStart(t *testing.T) {
	r := square(util.Vector3{})
	start := Sample(r, 0, 0, DefaultTuning()).Position

	v := New(0, DefaultTuning())
	var st State
	for i := 0; i < 4; i++ {
		st = v.Advance(r, 1)
	}
	assert.Equal(t, float32(0), v.Progress())
	assert.Equal(t, start, st.Position)
	assert.Equal(t, 1, v.Laps())
}

func TestWrapAtLengthMatchesFirstWaypoint(t *testing.T) {
	r := square(util.Vector3{})
	v := New(3, DefaultTuning())
	st := v.Advance(r, 1)
	assert.Equal(t, float32(0), v.Progress())
	assert.Equal(t, r.PointAt(0), st.Position)
}

func TestWrapModes(t *testing.T) {
	r := square(util.Vector3{})

	tests := []struct {
		name string
		mode WrapMode
		want []float32
	}{
		{"reset", WrapReset, []float32{1.5, 3, 0, 1.5}},
		{"modulo", WrapModulo, []float32{1.5, 3, 0.5, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tuning.Wrap = tt.mode
			v := New(0, tuning)
			for i, want := range tt.want {
				v.Advance(r, 1.5)
				assert.InDelta(t, want, v.Progress(), 1e-5, "tick %d", i)
			}
			assert.Equal(t, 1, v.Laps())
		})
	}
}

func TestModuloCountsEveryLap(t *testing.T) {
	tuning := DefaultTuning()
	tuning.Wrap = WrapModulo
	v := New(0, tuning)
	v.Advance(square(util.Vector3{}), 9)
	assert.InDelta(t, 1, v.Progress(), 1e-5)
	assert.Equal(t, 2, v.Laps())
}

func TestNegativeProgressWraps(t *testing.T) {
	r := square(util.Vector3{})
	v := New(-1, DefaultTuning())
	st := v.Advance(r, 0)
	assert.Equal(t, float32(3), v.Progress())
	assert.Equal(t, r.PointAt(3), st.Position)
	assert.Equal(t, 0, v.Laps())
}

func TestDegenerateRoute(t *testing.T) {
	for _, r := range []*route.Route{nil, route.New(nil), route.New([]util.Vector3{{1, 2, 3}})} {
		v := New(2, DefaultTuning())
		st := v.Advance(r, 1.25)
		assert.Equal(t, State{}, st)
		assert.Equal(t, float32(2), v.Progress())
		assert.Equal(t, 0, v.Laps())
		assert.Equal(t, State{}, Sample(r, 1, 5, DefaultTuning()))
	}
}

func TestParseWrapMode(t *testing.T) {
	m, err := ParseWrapMode("Modulo")
	require.NoError(t, err)
	assert.Equal(t, WrapModulo, m)

	m, err = ParseWrapMode("")
	require.NoError(t, err)
	assert.Equal(t, WrapReset, m)

	_, err = ParseWrapMode("bounce")
	assert.Error(t, err)
	assert.Equal(t, "modulo", WrapModulo.String())
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
