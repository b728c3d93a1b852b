// Package race orquestra um tick da corrida: avança os carros, move a câmera, consulta o
// cenário visível e produz a lista de instruções de desenho para o backend gráfico.
package race

import (
	"VirtuaRacing/cliente/internal/camera"
	"VirtuaRacing/cliente/internal/kinematics"
	"VirtuaRacing/cliente/internal/scenery"
	"VirtuaRacing/shared/mesh"
	pkgutil "VirtuaRacing/shared/pkg/util"
	"VirtuaRacing/shared/route"
	"VirtuaRacing/shared/util"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// Nomes das malhas e texturas esperadas no mapa de assets.
const (
	MeshRoad    = "road"
	MeshSky     = "sky"
	MeshChassis = "chassis"
	MeshWheel   = "wheel"
	MeshTree    = "tree"
	MeshStand   = "stand"

	TextureAtlas = "atlas"
	TextureSky   = "sky"
)

// Rival posiciona um adversário relativo ao jogador.
type Rival struct {
	Offset  float32 // Progresso inicial relativo ao jogador
	Lateral float32
}

// Params agrupa tudo o que a sessão precisa além da rota e das malhas.
type Params struct {
	Speed           float32 // Progresso por tick, igual para todos os carros
	RenderDistance  float32
	WheelSpinFactor float32 // Graus de giro da roda por unidade de progresso
	ToeIn           float32
	Tuning          kinematics.Tuning
	Scenery         scenery.Params
	Camera          camera.Params
	CameraMode      camera.Mode
	Rivals          []Rival
	LapHistory      int
}

// DefaultParams retorna a corrida padrão: dois rivais, um à frente e um atrás.
func DefaultParams() Params {
	return Params{
		Speed:           1.25,
		RenderDistance:  45,
		WheelSpinFactor: 30,
		ToeIn:           7,
		Tuning:          kinematics.DefaultTuning(),
		Scenery:         scenery.DefaultParams(),
		Camera:          camera.DefaultParams(),
		CameraMode:      camera.ModeChase,
		Rivals: []Rival{
			{Offset: 25, Lateral: -3.5},
			{Offset: -15, Lateral: 3.5},
		},
		LapHistory: 8,
	}
}

// DrawInstruction descreve uma instância a desenhar. Translation e RotationY são informativos
// (HUD, logs); o backend usa Transform.
type DrawInstruction struct {
	Mesh        string
	Buffer      *mesh.Buffer
	Texture     string
	Unlit       bool
	Translation util.Vector3
	RotationY   float32
	Transform   mgl32.Mat4
}

// Frame é o resultado de um tick.
type Frame struct {
	Tick           uint64
	Player         kinematics.State
	Rivals         []kinematics.State
	Progress       float32
	Camera         camera.State
	Draws          []DrawInstruction
	VisibleScenery []scenery.Item
	Laps           int
	LastLap        int // Duração da última volta em ticks (0 antes da primeira)
}

type car struct {
	vehicle *kinematics.Vehicle
	lateral float32
}

// Session mantém o estado da corrida entre ticks. Não é segura para uso concorrente:
// deve ser usada apenas pela thread do loop de frames.
type Session struct {
	route   *route.Route
	meshes  map[string]*mesh.Buffer
	params  Params
	scenery *scenery.Field
	camera  *camera.Controller
	player  car
	rivals  []car
	spin    float32
	tick    uint64

	laps     *pkgutil.RingBuffer[int]
	lapStart uint64

	log zerolog.Logger
}

// NewSession gera o cenário uma única vez e posiciona jogador e rivais.
func NewSession(r *route.Route, meshes map[string]*mesh.Buffer, p Params, rng scenery.Rand, log zerolog.Logger) *Session {
	s := &Session{
		route:   r,
		meshes:  meshes,
		params:  p,
		scenery: scenery.Generate(r, p.Scenery, rng),
		camera:  camera.New(p.Camera),
		player:  car{vehicle: kinematics.New(0, p.Tuning)},
		laps:    pkgutil.NewRingBuffer[int](max(p.LapHistory, 1)),
		log:     log,
	}
	s.camera.SetMode(p.CameraMode)

	if r.Degenerate() {
		log.Warn().Int("waypoints", r.Len()).Msg("rota degenerada, carros ficarão parados na origem")
	}

	n := float32(r.Len())
	for _, rv := range p.Rivals {
		start := rv.Offset
		if n > 0 {
			start = util.WrapFloat(start, n)
		}
		s.rivals = append(s.rivals, car{
			vehicle: kinematics.New(start, p.Tuning),
			lateral: rv.Lateral,
		})
	}

	log.Info().
		Int("waypoints", r.Len()).
		Int("scenery", s.scenery.Len()).
		Int("rivals", len(s.rivals)).
		Msg("sessão criada")
	return s
}

// Tick avança a simulação em um passo e monta o frame.
func (s *Session) Tick() Frame {
	s.tick++
	speed := s.params.Speed

	lapsBefore := s.player.vehicle.Laps()
	player := s.player.vehicle.Advance(s.route, speed)
	if done := s.player.vehicle.Laps() - lapsBefore; done > 0 {
		s.completeLap(done)
	}

	rivals := make([]kinematics.State, len(s.rivals))
	for i, rc := range s.rivals {
		rivals[i] = rc.vehicle.Advance(s.route, speed)
	}

	s.spin = math32.Mod(s.spin+speed*s.params.WheelSpinFactor, 360)

	frame := Frame{
		Tick:           s.tick,
		Player:         player,
		Rivals:         rivals,
		Progress:       s.player.vehicle.Progress(),
		Camera:         s.camera.Update(player),
		VisibleScenery: s.scenery.Visible(player.Position, s.params.RenderDistance),
		Laps:           s.player.vehicle.Laps(),
	}
	if last, ok := s.laps.Last(); ok {
		frame.LastLap = last
	}

	frame.Draws = s.buildDraws(frame, rivals)
	return frame
}

func (s *Session) completeLap(done int) {
	duration := int(s.tick - s.lapStart)
	s.lapStart = s.tick
	s.laps.Push(duration)
	s.log.Info().
		Int("lap", s.player.vehicle.Laps()).
		Int("ticks", duration).
		Int("wrapped", done).
		Msg("volta completa")
}

func (s *Session) buildDraws(f Frame, rivals []kinematics.State) []DrawInstruction {
	draws := make([]DrawInstruction, 0, 2+len(f.VisibleScenery)+5*(1+len(rivals)))

	// Céu acompanha o jogador no plano para nunca chegar à borda
	sky := mgl32.Translate3D(f.Player.Position.X(), 0, f.Player.Position.Z())
	draws = s.appendDraw(draws, MeshSky, TextureSky, true, sky, 0)
	draws = s.appendDraw(draws, MeshRoad, TextureAtlas, false, mgl32.Ident4(), 0)

	for _, it := range f.VisibleScenery {
		m := translate(it.Position)
		if it.Kind == scenery.Stand {
			m = m.Mul4(rotateY(180))
			draws = s.appendDraw(draws, MeshStand, TextureAtlas, false, m, 180)
			continue
		}
		draws = s.appendDraw(draws, MeshTree, TextureAtlas, false, m, 0)
	}

	draws = s.appendCar(draws, f.Player, s.player.lateral)
	for i, st := range rivals {
		draws = s.appendCar(draws, st, s.rivals[i].lateral)
	}
	return draws
}

func (s *Session) appendCar(draws []DrawInstruction, st kinematics.State, lateral float32) []DrawInstruction {
	body := VehicleTransform(st, lateral)
	draws = s.appendDraw(draws, MeshChassis, TextureAtlas, false, body, st.Heading)
	for _, w := range WheelTransforms(body, st.Steering, s.spin, s.params.ToeIn) {
		draws = s.appendDraw(draws, MeshWheel, TextureAtlas, false, w, st.Heading)
	}
	return draws
}

// appendDraw ignora malhas que não foram carregadas.
func (s *Session) appendDraw(draws []DrawInstruction, name, texture string, unlit bool, m mgl32.Mat4, rotY float32) []DrawInstruction {
	buf, ok := s.meshes[name]
	if !ok || buf == nil {
		return draws
	}
	return append(draws, DrawInstruction{
		Mesh:        name,
		Buffer:      buf,
		Texture:     texture,
		Unlit:       unlit,
		Translation: translationOf(m),
		RotationY:   rotY,
		Transform:   m,
	})
}

// SetCameraMode troca o enquadramento a partir do próximo tick.
func (s *Session) SetCameraMode(m camera.Mode) {
	s.camera.SetMode(m)
}

// ToggleCamera alterna o enquadramento e retorna o novo modo.
func (s *Session) ToggleCamera() camera.Mode {
	return s.camera.Toggle()
}

// CameraMode retorna o enquadramento atual.
func (s *Session) CameraMode() camera.Mode {
	return s.camera.Mode
}

// Scenery retorna o campo gerado na criação da sessão.
func (s *Session) Scenery() *scenery.Field {
	return s.scenery
}

// LapHistory retorna as durações (em ticks) das voltas mais recentes, da mais antiga para a mais nova.
func (s *Session) LapHistory() []int {
	return s.laps.Items()
}

// BestLap retorna a volta mais curta do histórico.
func (s *Session) BestLap() (int, bool) {
	items := s.laps.Items()
	if len(items) == 0 {
		return 0, false
	}
	best := items[0]
	for _, d := range items[1:] {
		best = min(best, d)
	}
	return best, true
}

// Ticks retorna quantos ticks já foram simulados.
func (s *Session) Ticks() uint64 {
	return s.tick
}
