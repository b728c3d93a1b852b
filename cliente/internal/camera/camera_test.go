package camera

import (
	"testing"

	"VirtuaRacing/cliente/internal/kinematics"
	"VirtuaRacing/shared/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got util.Vector3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "componente %d de %v", i, got)
	}
}

func TestChase(t *testing.T) {
	v := kinematics.State{Position: util.Vector3{10, 1, 20}, Heading: 0}
	st := Compute(ModeChase, DefaultParams(), v)

	assertVec(t, util.Vector3{10, 10.5, 4}, st.Eye)
	assertVec(t, util.Vector3{10, 7.5, 20}, st.Target)
	assert.Equal(t, util.Up, st.Up)
	assert.Equal(t, ModeChase, st.Mode)
	assert.Equal(t, float32(60), st.Fovy)
}

func TestChaseFollowsHeading(t *testing.T) {
	v := kinematics.State{Heading: 90}
	st := Compute(ModeChase, DefaultParams(), v)
	// Rumo 90 aponta para +X: a câmera fica em -X.
	assertVec(t, util.Vector3{-16, 9.5, 0}, st.Eye)
}

func TestOverhead(t *testing.T) {
	v := kinematics.State{Position: util.Vector3{-3, 2, 7}, Heading: 123}
	st := Compute(ModeOverhead, DefaultParams(), v)

	assertVec(t, util.Vector3{-3, 87, 7}, st.Eye)
	assert.Equal(t, v.Position, st.Target)
	assert.Equal(t, util.Vector3{0, 0, -1}, st.Up)
}

func TestControllerToggleRestoresUp(t *testing.T) {
	c := New(DefaultParams())
	v := kinematics.State{Position: util.Vector3{1, 0, 1}, Heading: 45}

	assert.Equal(t, util.Up, c.Update(v).Up)

	assert.Equal(t, ModeOverhead, c.Toggle())
	assert.Equal(t, util.Vector3{0, 0, -1}, c.Update(v).Up)

	assert.Equal(t, ModeChase, c.Toggle())
	st := c.Update(v)
	assert.Equal(t, util.Up, st.Up)
	assert.Equal(t, Compute(ModeChase, DefaultParams(), v), st)

	c.SetMode(ModeOverhead)
	assert.Equal(t, "overhead", c.Update(v).Mode.String())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Overhead")
	require.NoError(t, err)
	assert.Equal(t, ModeOverhead, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeChase, m)

	_, err = ParseMode("cockpit")
	assert.Error(t, err)
}
