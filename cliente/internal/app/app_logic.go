package app

import (
	"errors"
	"fmt"

	"VirtuaRacing/cliente/internal/assets"
	"VirtuaRacing/cliente/internal/camera"
	"VirtuaRacing/cliente/internal/race"
	"VirtuaRacing/cliente/internal/scenery"
	"VirtuaRacing/shared/assetcache"
	"VirtuaRacing/shared/logging"
	"VirtuaRacing/shared/route"
)

// prepare carrega malhas e rota e cria a sessão. A sessão sempre é criada: assets que
// falham viram malhas vazias e uma rota inválida deixa os carros parados na origem.
// O erro devolvido junta as falhas para o log.
func (a *App) prepare() error {
	var errs []error

	var cache assets.MeshCache
	if a.Config.Cache.Enabled {
		c, err := assetcache.Open(a.Config.Cache.Path, logging.Component(a.log, "Cache"))
		if err != nil {
			a.log.Warn().Err(err).Msg("cache de malhas indisponível, seguindo sem cache")
		} else {
			a.cache = c
			cache = c
		}
	}

	a.assets = assets.NewManager(a.fs, a.Config.Assets.Dir, cache, logging.Component(a.log, "Assets"))
	if err := a.assets.LoadMeshes(a.Config.Assets.Meshes); err != nil {
		errs = append(errs, err)
	}
	a.assets.SetTextures(a.Config.Assets.Textures)

	r, err := a.assets.LoadRoute(a.Config.Assets.Route, route.Options{SwapYZ: a.Config.Assets.SwapYZ})
	if err != nil {
		errs = append(errs, err)
	}

	params, err := race.ParamsFromConfig(a.Config)
	if err != nil {
		errs = append(errs, fmt.Errorf("parâmetros da corrida: %w", err))
		params = race.DefaultParams()
	}

	rng := scenery.NewRand(a.Config.Race.Seed)
	a.session = race.NewSession(r, a.assets.Meshes(), params, rng, logging.Component(a.log, "Race"))

	a.log.Info().
		Int("waypoints", r.Len()).
		Int("scenery", a.session.Scenery().Len()).
		Uint64("seed", a.Config.Race.Seed).
		Str("camera", a.session.CameraMode().String()).
		Msg("corrida preparada")
	return errors.Join(errs...)
}

// HeadlessReport resume uma execução sem janela.
type HeadlessReport struct {
	Ticks   int
	Laps    int
	BestLap int // Em ticks; 0 se nenhuma volta foi completada
	Frames  int
	Draws   int
	ByMesh  map[string]int
	Final   race.Frame
}

// RunHeadless simula ticks frames sem abrir janela, emitindo para um backend de log.
func (a *App) RunHeadless(ticks int) (HeadlessReport, error) {
	if ticks < 0 {
		return HeadlessReport{}, fmt.Errorf("número de ticks inválido: %d", ticks)
	}
	defer a.closeCache()

	if err := a.prepare(); err != nil {
		a.log.Warn().Err(err).Msg("corrida preparada com falhas")
	}
	a.State = StateRunning

	backend := race.NewLogBackend(logging.Sampled(logging.Component(a.log, "Headless")))
	for i := 0; i < ticks; i++ {
		a.frame = a.session.Tick()
		race.Emit(a.frame, backend)
	}

	rep := HeadlessReport{
		Ticks:  ticks,
		Laps:   a.frame.Laps,
		Frames: backend.Frames,
		Draws:  backend.Draws,
		ByMesh: backend.ByMesh,
		Final:  a.frame,
	}
	if best, ok := a.session.BestLap(); ok {
		rep.BestLap = best
	}

	a.log.Info().
		Int("ticks", rep.Ticks).
		Int("laps", rep.Laps).
		Int("bestLapTicks", rep.BestLap).
		Int("draws", rep.Draws).
		Msg("execução headless concluída")
	return rep, nil
}

// toggleCamera alterna entre perseguição e vista de cima.
func (a *App) toggleCamera() camera.Mode {
	mode := a.session.ToggleCamera()
	a.log.Info().Str("mode", mode.String()).Msg("modo de câmera alterado")
	return mode
}
