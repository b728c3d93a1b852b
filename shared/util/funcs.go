package util

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vector3 é um alias para mgl32.Vec3 (tipo valor: toda operação retorna um vetor novo).
type Vector3 = mgl32.Vec3

// Up é o eixo vertical do mundo (Y para cima, Z para frente).
var Up = Vector3{0, 1, 0}

// LerpVec interpola componente a componente: a*(1-t) + b*t.
// Com t == 0 o resultado é exatamente a.
func LerpVec(a, b Vector3, t float32) Vector3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// DistSqXZ retorna a distância quadrada no plano horizontal (ignora Y).
func DistSqXZ(v1, v2 Vector3) float32 {
	dx := v1[0] - v2[0]
	dz := v1[2] - v2[2]
	return dx*dx + dz*dz
}

// HeadingXZ retorna o rumo em graus do deslocamento horizontal from -> to.
// Convenção: atan2(dx, dz), 0 graus aponta para +Z.
func HeadingXZ(from, to Vector3) float32 {
	return mgl32.RadToDeg(math32.Atan2(to[0]-from[0], to[2]-from[2]))
}

// Forward retorna o vetor de frente para um rumo em graus: (sin h, 0, cos h).
func Forward(headingDeg float32) Vector3 {
	rad := mgl32.DegToRad(headingDeg)
	return Vector3{math32.Sin(rad), 0, math32.Cos(rad)}
}

// NormalizeAngle leva um ângulo em graus para o intervalo (-180, 180].
func NormalizeAngle(deg float32) float32 {
	if math32.IsNaN(deg) || math32.IsInf(deg, 0) {
		return 0
	}
	// Mod primeiro para não girar milhares de vezes em entradas enormes
	deg = math32.Mod(deg, 360)
	for deg <= -180 {
		deg += 360
	}
	for deg > 180 {
		deg -= 360
	}
	return deg
}

// AngleDiff retorna a diferença assinada to - from, normalizada em (-180, 180].
func AngleDiff(from, to float32) float32 {
	return NormalizeAngle(to - from)
}

// WrapIndex leva qualquer inteiro para [0, n). Com n <= 0 retorna 0.
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// WrapFloat leva x para [0, n) usando módulo verdadeiro (resultado nunca negativo).
func WrapFloat(x, n float32) float32 {
	if n <= 0 {
		return 0
	}
	x = math32.Mod(x, n)
	if x < 0 {
		x += n
	}
	if x >= n {
		x = 0
	}
	return x
}
