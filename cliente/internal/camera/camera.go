package camera

import (
	"fmt"
	"strings"

	"VirtuaRacing/cliente/internal/kinematics"
	"VirtuaRacing/shared/util"
)

// Mode define o enquadramento da câmera.
type Mode int

const (
	ModeChase    Mode = iota // Atrás e acima do carro
	ModeOverhead             // Vista de cima, norte para cima
)

func (m Mode) String() string {
	switch m {
	case ModeChase:
		return "chase"
	case ModeOverhead:
		return "overhead"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converte o nome vindo da configuração ("chase" ou "overhead").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "chase":
		return ModeChase, nil
	case "overhead":
		return ModeOverhead, nil
	default:
		return ModeChase, fmt.Errorf("modo de câmera desconhecido: %q", s)
	}
}

// Params são as distâncias da câmera em unidades de mundo.
type Params struct {
	ChaseDistance  float32 // Recuo atrás do carro, ao longo do rumo
	ChaseHeight    float32 // Altura do olho acima do carro
	TargetHeight   float32 // Altura do ponto olhado acima do carro
	OverheadHeight float32
	Fovy           float32
}

// DefaultParams retorna o enquadramento padrão.
func DefaultParams() Params {
	return Params{
		ChaseDistance:  16,
		ChaseHeight:    9.5,
		TargetHeight:   6.5,
		OverheadHeight: 85,
		Fovy:           60,
	}
}

// State é o resultado de um frame; não guarda referência ao controlador.
type State struct {
	Eye    util.Vector3
	Target util.Vector3
	Up     util.Vector3
	Fovy   float32
	Mode   Mode
}

// Compute deriva olho, alvo e vetor up a partir da pose do veículo.
func Compute(mode Mode, p Params, v kinematics.State) State {
	st := State{Mode: mode, Fovy: p.Fovy}
	switch mode {
	case ModeOverhead:
		st.Eye = v.Position.Add(util.Vector3{0, p.OverheadHeight, 0})
		st.Target = v.Position
		// Olhando para baixo o up não pode ser Y; -Z deixa a pista "em pé" na tela
		st.Up = util.Vector3{0, 0, -1}
	default:
		back := util.Forward(v.Heading).Mul(p.ChaseDistance)
		st.Eye = v.Position.Sub(back).Add(util.Vector3{0, p.ChaseHeight, 0})
		st.Target = v.Position.Add(util.Vector3{0, p.TargetHeight, 0})
		st.Up = util.Up
	}
	return st
}

// Controller guarda o modo atual. O up é recalculado a cada Update, então voltar para
// ModeChase sempre restaura (0, 1, 0).
type Controller struct {
	Mode   Mode
	Params Params
}

// New cria um controlador em modo perseguição.
func New(p Params) *Controller {
	return &Controller{Mode: ModeChase, Params: p}
}

// Update calcula o estado da câmera para o frame.
func (c *Controller) Update(v kinematics.State) State {
	return Compute(c.Mode, c.Params, v)
}

// SetMode troca o enquadramento.
func (c *Controller) SetMode(mode Mode) {
	c.Mode = mode
}

// Toggle alterna entre perseguição e vista de cima e retorna o novo modo.
func (c *Controller) Toggle() Mode {
	if c.Mode == ModeChase {
		c.Mode = ModeOverhead
	} else {
		c.Mode = ModeChase
	}
	return c.Mode
}
