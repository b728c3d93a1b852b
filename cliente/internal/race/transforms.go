package race

import (
	"VirtuaRacing/cliente/internal/kinematics"
	"VirtuaRacing/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Wheel indexa as quatro rodas na ordem de WheelTransforms.
type Wheel int

const (
	FrontLeft Wheel = iota
	FrontRight
	RearLeft
	RearRight
)

// WheelOffset é a meia-bitola (X), altura do eixo (Y) e meio entre-eixos (Z) do chassi.
var WheelOffset = util.Vector3{2, 1, 2.5}

// Fatores aplicados ao eixo dianteiro, que é mais estreito e mais afastado do centro.
const (
	frontTrack = 0.8
	frontReach = 1.35
)

func translate(v util.Vector3) mgl32.Mat4 {
	return mgl32.Translate3D(v[0], v[1], v[2])
}

func rotateY(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(deg))
}

func rotateX(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(mgl32.DegToRad(deg))
}

// VehicleTransform posiciona o chassi: T(posição) · Ry(rumo) · T(lateral, 0, 0).
// O deslocamento lateral é aplicado no espaço do carro, então acompanha as curvas.
func VehicleTransform(st kinematics.State, lateral float32) mgl32.Mat4 {
	return translate(st.Position).
		Mul4(rotateY(st.Heading)).
		Mul4(mgl32.Translate3D(lateral, 0, 0))
}

// WheelTransforms devolve as matrizes das rodas a partir da matriz do chassi.
// As dianteiras recebem convergência (toe) e esterçamento; as da direita são espelhadas
// com 180 graus em Y; todas giram spin graus em X.
func WheelTransforms(body mgl32.Mat4, steering, spin, toe float32) [4]mgl32.Mat4 {
	x, y, z := WheelOffset[0], WheelOffset[1], WheelOffset[2]
	roll := rotateX(spin)

	var out [4]mgl32.Mat4
	out[FrontLeft] = body.Mul4(mgl32.Translate3D(x*frontTrack, y, z*frontReach)).
		Mul4(rotateY(-toe + steering)).Mul4(roll)
	out[FrontRight] = body.Mul4(mgl32.Translate3D(-x*frontTrack, y, z*frontReach)).
		Mul4(rotateY(180 + toe + steering)).Mul4(roll)
	out[RearLeft] = body.Mul4(mgl32.Translate3D(-x, y, -z)).Mul4(roll)
	out[RearRight] = body.Mul4(mgl32.Translate3D(x, y, -z)).
		Mul4(rotateY(180)).Mul4(roll)
	return out
}

// translationOf extrai a coluna de translação de uma matriz afim.
func translationOf(m mgl32.Mat4) util.Vector3 {
	return m.Col(3).Vec3()
}
