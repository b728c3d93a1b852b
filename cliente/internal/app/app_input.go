package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateInput processa entradas de teclado gerais.
func (a *App) updateInput() {
	// ESC: alternar pausa
	if rl.IsKeyPressed(rl.KeyEscape) {
		switch a.State {
		case StateRunning:
			a.State = StatePaused
			a.log.Info().Msg("jogo pausado")
		case StatePaused:
			a.State = StateRunning
			a.log.Info().Msg("retomando jogo")
		}
	}

	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.Debug.ShowInfo = !a.Config.Debug.ShowInfo
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if a.State != StateRunning {
		return
	}

	// Alternar câmera com C
	if rl.IsKeyPressed(rl.KeyC) {
		a.toggleCamera()
	}

	// Toggle wireframe
	if rl.IsKeyPressed(rl.KeyF2) && a.renderer != nil {
		a.renderer.Wireframe = !a.renderer.Wireframe
	}
}
