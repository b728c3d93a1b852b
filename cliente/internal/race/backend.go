package race

import (
	"VirtuaRacing/cliente/internal/camera"

	"github.com/rs/zerolog"
)

// Backend recebe a câmera e as instruções de um frame, nessa ordem.
type Backend interface {
	SetCamera(camera.State)
	Draw(DrawInstruction)
}

// Emit entrega o frame ao backend: câmera primeiro, depois os desenhos na ordem montada.
func Emit(f Frame, b Backend) {
	b.SetCamera(f.Camera)
	for _, d := range f.Draws {
		b.Draw(d)
	}
}

// LogBackend é o backend do modo headless: conta os desenhos e registra no zerolog.
// Os eventos por instância saem em Trace.
type LogBackend struct {
	log    zerolog.Logger
	Frames int
	Draws  int
	ByMesh map[string]int
}

// NewLogBackend cria um backend que apenas registra.
func NewLogBackend(log zerolog.Logger) *LogBackend {
	return &LogBackend{log: log, ByMesh: make(map[string]int)}
}

func (b *LogBackend) SetCamera(c camera.State) {
	b.Frames++
	b.log.Debug().
		Int("frame", b.Frames).
		Str("mode", c.Mode.String()).
		Floats32("eye", c.Eye[:]).
		Floats32("target", c.Target[:]).
		Floats32("up", c.Up[:]).
		Msg("câmera")
}

func (b *LogBackend) Draw(d DrawInstruction) {
	b.Draws++
	b.ByMesh[d.Mesh]++
	b.log.Trace().
		Str("mesh", d.Mesh).
		Str("texture", d.Texture).
		Bool("unlit", d.Unlit).
		Int("triangles", d.Buffer.TriangleCount()).
		Floats32("at", d.Translation[:]).
		Float32("rotY", d.RotationY).
		Msg("draw")
}
