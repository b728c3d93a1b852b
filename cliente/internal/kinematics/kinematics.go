// Package kinematics converte o progresso 1-D de um veículo ao longo da rota em posição,
// rumo e esterçamento suavizado. Não há física: o carro é "puxado" pelo trilho.
package kinematics

import (
	"fmt"
	"strings"

	"VirtuaRacing/shared/route"
	"VirtuaRacing/shared/util"

	"github.com/chewxy/math32"
)

// WrapMode define o que acontece quando o progresso passa do fim da rota.
type WrapMode int

const (
	// WrapReset zera o progresso ao completar a volta (o excedente é descartado).
	WrapReset WrapMode = iota
	// WrapModulo aplica módulo verdadeiro, preservando o excedente.
	WrapModulo
)

func (m WrapMode) String() string {
	switch m {
	case WrapReset:
		return "reset"
	case WrapModulo:
		return "modulo"
	default:
		return fmt.Sprintf("WrapMode(%d)", int(m))
	}
}

// ParseWrapMode converte o nome vindo da configuração.
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reset":
		return WrapReset, nil
	case "modulo":
		return WrapModulo, nil
	default:
		return WrapReset, fmt.Errorf("modo de volta desconhecido: %q", s)
	}
}

// Tuning agrupa as constantes do esterçamento.
type Tuning struct {
	SteerGain float32 // Ganho sobre a diferença de rumo (graus -> graus de volante)
	MaxSteer  float32 // Limite absoluto do esterçamento em graus
	Smoothing float32 // Peso do valor anterior no filtro passa-baixa
	Response  float32 // Peso do novo alvo no filtro passa-baixa
	Wrap      WrapMode
}

// DefaultTuning retorna o ajuste padrão.
func DefaultTuning() Tuning {
	return Tuning{
		SteerGain: 7.5,
		MaxSteer:  50,
		Smoothing: 0.8,
		Response:  0.2,
		Wrap:      WrapReset,
	}
}

// State é a pose derivada de um tick. Heading e Steering em graus.
type State struct {
	Position util.Vector3
	Heading  float32
	Steering float32
}

// Vehicle guarda o estado persistente de um carro entre ticks.
type Vehicle struct {
	progress float32
	steering float32
	laps     int
	tuning   Tuning
}

// New cria um veículo no progresso dado. O valor é levado para dentro da rota no primeiro Advance.
func New(progress float32, tuning Tuning) *Vehicle {
	return &Vehicle{progress: progress, tuning: tuning}
}

// Progress retorna o progresso atual em [0, len) (após o primeiro Advance).
func (v *Vehicle) Progress() float32 { return v.progress }

// Laps retorna quantas vezes o veículo passou pelo início da rota.
func (v *Vehicle) Laps() int { return v.laps }

// Advance avança o progresso em speed e recalcula a pose.
// Numa rota degenerada (menos de 2 pontos) retorna a pose nula e não altera nada.
func (v *Vehicle) Advance(r *route.Route, speed float32) State {
	if r.Degenerate() {
		return State{}
	}

	n := float32(r.Len())
	v.progress += speed
	switch {
	case v.progress >= n:
		if v.tuning.Wrap == WrapModulo {
			v.laps += int(v.progress / n)
			v.progress = util.WrapFloat(v.progress, n)
		} else {
			v.laps++
			v.progress = 0
		}
	case v.progress < 0:
		v.progress = util.WrapFloat(v.progress, n)
	}

	st := Sample(r, v.progress, v.steering, v.tuning)
	v.steering = st.Steering
	return st
}

// Sample avalia a pose para um progresso sem efeitos colaterais.
// prevSteering é o esterçamento do tick anterior (entrada do filtro passa-baixa).
func Sample(r *route.Route, progress, prevSteering float32, t Tuning) State {
	if r.Degenerate() {
		return State{}
	}

	progress = util.WrapFloat(progress, float32(r.Len()))
	idx := int(math32.Floor(progress))
	frac := progress - float32(idx)

	cur := r.PointAt(idx)
	next := r.PointAt(idx + 1)
	after := r.PointAt(idx + 2)

	heading := util.HeadingXZ(cur, next)
	future := util.HeadingXZ(next, after)

	target := clamp(util.AngleDiff(heading, future)*t.SteerGain, t.MaxSteer)
	steering := clamp(prevSteering*t.Smoothing+target*t.Response, t.MaxSteer)

	return State{
		Position: util.LerpVec(cur, next, frac),
		Heading:  heading,
		Steering: steering,
	}
}

func clamp(v, limit float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
