package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"VirtuaRacing/cliente/internal/app"
	"VirtuaRacing/shared/config"
	"VirtuaRacing/shared/logging"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	configPath := flag.String("config", "config.json", "Arquivo de configuração JSON")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug e logar em nível debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	headless := flag.Bool("headless", false, "Simular sem abrir janela")
	ticks := flag.Int("ticks", 600, "Número de ticks no modo headless")
	seed := flag.Uint64("seed", 0, "Semente do cenário (0 usa a da configuração)")
	overhead := flag.Bool("overhead", false, "Iniciar com a câmera de cima")
	flag.Parse()

	// Carregar configurações
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuração inválida: %v\n", err)
		os.Exit(1)
	}

	// Aplicar flags de linha de comando (sobrescrevem o arquivo)
	if *fullscreen {
		cfg.Window.Fullscreen = true
	}
	if *debug {
		cfg.Debug.ShowInfo = true
		cfg.Log.Level = "debug"
	}
	if *width > 0 {
		cfg.Window.Width = int32(*width)
	}
	if *height > 0 {
		cfg.Window.Height = int32(*height)
	}
	if *seed != 0 {
		cfg.Race.Seed = *seed
	}
	if *overhead {
		cfg.Camera.Mode = "overhead"
	}

	// Configurar log em arquivo (JSON) além do console
	log := logging.Setup(cfg.Log.Level, os.Stdout, nil)
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err == nil {
			defer f.Close()
			log = logging.Setup(cfg.Log.Level, os.Stdout, f)
		} else {
			log.Warn().Err(err).Str("file", cfg.Log.File).Msg("não foi possível abrir o log em arquivo")
		}
	}

	log.Info().Msg("╔══════════════════════════════════════╗")
	log.Info().Msg("║          VirtuaRacing v0.1.0         ║")
	log.Info().Msg("╚══════════════════════════════════════╝")
	log.Info().Str("config", *configPath).Bool("headless", *headless).Msg("iniciando")

	application := app.New(cfg, log)
	if *headless {
		if _, err := application.RunHeadless(*ticks); err != nil {
			log.Error().Err(err).Msg("execução headless falhou")
			os.Exit(1)
		}
		return
	}
	application.Run()
}
