package app

import (
	"VirtuaRacing/cliente/internal/assets"
	"VirtuaRacing/cliente/internal/race"
	"VirtuaRacing/cliente/internal/render"
	"VirtuaRacing/shared/assetcache"
	"VirtuaRacing/shared/config"
	"VirtuaRacing/shared/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateLoading AppState = iota // Carregando assets
	StateRunning                 // Corrida em andamento
	StatePaused                  // Pausado (ESC)
)

func (s AppState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// App é a aplicação principal do VirtuaRacing.
type App struct {
	Config *config.Config
	State  AppState

	fs  afero.Fs
	log zerolog.Logger

	assets   *assets.Manager
	cache    *assetcache.Cache
	session  *race.Session
	renderer *render.Renderer

	// Último frame simulado (o HUD lê daqui)
	frame      race.Frame
	frameCount int
	quit       bool // Pedido de saída vindo do menu de pausa
}

// New cria uma nova instância da aplicação. Os assets são lidos do disco.
func New(cfg *config.Config, log zerolog.Logger) *App {
	return &App{
		Config: cfg,
		State:  StateLoading,
		fs:     afero.NewOsFs(),
		log:    logging.Component(log, "App"),
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error().Interface("panic", r).Msg("erro fatal recuperado")
			panic(r)
		}
	}()

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.Window.Width, a.Config.Window.Height, a.Config.Window.Title)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	if a.Config.Window.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.Window.TargetFPS)
	rl.SetExitKey(0) // ESC pausa em vez de fechar

	a.log.Info().
		Int32("width", a.Config.Window.Width).
		Int32("height", a.Config.Window.Height).
		Msg("janela inicializada")

	a.renderer = render.NewRenderer(a.Config.Light, logging.Component(a.log, "Renderer"))
	a.renderer.Wireframe = a.Config.Debug.Wireframe

	// Loop principal
	for !rl.WindowShouldClose() && !a.quit {
		a.update()
		a.draw()
	}

	// Cleanup
	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica do jogo a cada frame.
func (a *App) update() {
	a.frameCount++

	switch a.State {
	case StateLoading:
		// O primeiro frame desenha a tela de carregamento antes do trabalho pesado
		if a.frameCount > 1 {
			a.load()
		}
	case StateRunning:
		a.updateInput()
		a.step()
	case StatePaused:
		a.updateInput() // Permite detectar ESC para despausar
	}
}

// step avança a corrida um tick, a menos que o input deste frame tenha pausado o jogo.
func (a *App) step() {
	if a.State != StateRunning || a.session == nil {
		return
	}
	a.frame = a.session.Tick()
}

// load prepara a sessão e envia malhas e texturas para a GPU.
func (a *App) load() {
	if err := a.prepare(); err != nil {
		a.log.Error().Err(err).Msg("falha ao preparar a corrida")
	}
	a.renderer.UploadMeshes(a.assets.Meshes())
	a.renderer.LoadTextures(a.assets)

	// Frame inicial para o HUD e a câmera antes do primeiro tick
	a.frame = a.session.Tick()
	a.State = StateRunning
	a.log.Info().Int("frames", a.frameCount).Msg("corrida iniciada")
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	a.log.Info().Msg("finalizando aplicação")

	if a.session != nil {
		if best, ok := a.session.BestLap(); ok {
			a.log.Info().Int("laps", a.frame.Laps).Int("bestLapTicks", best).Msg("resumo da corrida")
		}
	}
	if a.renderer != nil {
		a.renderer.Unload()
	}
	a.closeCache()
}

func (a *App) closeCache() {
	if a.cache == nil {
		return
	}
	if err := a.cache.Close(); err != nil {
		a.log.Warn().Err(err).Msg("erro ao fechar o cache de malhas")
	}
	a.cache = nil
}
