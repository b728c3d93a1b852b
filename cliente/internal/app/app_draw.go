package app

import (
	"fmt"

	"VirtuaRacing/cliente/internal/race"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(110, 160, 215, 255))

	if a.State == StateLoading {
		a.drawLoadingScreen()
	} else {
		a.drawScene()
		a.drawHUD()

		if a.State == StatePaused {
			a.drawPauseMenu()
		}
	}

	rl.EndDrawing()
}

// drawScene entrega o último frame da corrida ao renderer.
func (a *App) drawScene() {
	if a.renderer == nil {
		return
	}
	race.Emit(a.frame, a.renderer)
	a.renderer.EndFrame()
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	a.drawLapPanel()

	if !a.Config.Debug.ShowInfo {
		return
	}

	width := int32(340)
	height := int32(220)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)
	rl.DrawText(fmt.Sprintf("Tick %d", a.frame.Tick), x+215, y+10, 20, rl.SkyBlue)

	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	// Veículo
	rl.DrawText("VEÍCULO", x+10, y+45, 12, rl.Gray)
	p := a.frame.Player
	rl.DrawText(fmt.Sprintf("Pos: (%.1f, %.1f, %.1f)", p.Position[0], p.Position[1], p.Position[2]), x+10, y+60, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Progresso: %.2f | Rumo: %.1f° | Volante: %.1f°", a.frame.Progress, p.Heading, p.Steering), x+10, y+80, 14, rl.LightGray)

	rl.DrawLine(x+10, y+100, x+width-10, y+100, rl.NewColor(100, 100, 100, 100))

	// Cena
	rl.DrawText("CENA", x+10, y+110, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("Câmera: %s | Cenário visível: %d", a.frame.Camera.Mode, len(a.frame.VisibleScenery)), x+10, y+125, 14, rl.LightGray)
	if a.renderer != nil {
		rl.DrawText(fmt.Sprintf("Draw calls: %d | Triângulos: %d", a.renderer.DrawCalls, a.renderer.Triangles), x+10, y+145, 14, rl.LightGray)
	}

	rl.DrawLine(x+10, y+165, x+width-10, y+165, rl.NewColor(100, 100, 100, 100))

	wireframeExtra := ""
	if a.renderer != nil && a.renderer.Wireframe {
		wireframeExtra = " [WIREFRAME ON]"
	}
	rl.DrawText("C: Câmera | ESC: Pausa | F2: Wireframe", x+10, y+175, 14, rl.SkyBlue)
	rl.DrawText(fmt.Sprintf("F3: HUD | F11: Tela Cheia%s", wireframeExtra), x+10, y+195, 14, rl.SkyBlue)

	// Título no canto inferior direito
	title := "VirtuaRacing"
	titleWidth := rl.MeasureText(title, 18)
	rl.DrawText(title,
		int32(rl.GetScreenWidth())-titleWidth-20, int32(rl.GetScreenHeight())-30,
		18, rl.NewColor(200, 200, 200, 150))
}

// drawLapPanel mostra voltas e tempos (em segundos, pelo FPS alvo) no canto superior esquerdo.
func (a *App) drawLapPanel() {
	x, y := int32(10), int32(10)
	rl.DrawRectangle(x, y, 220, 86, rl.NewColor(0, 0, 0, 150))

	rl.DrawText(fmt.Sprintf("VOLTA %d", a.frame.Laps+1), x+10, y+8, 24, rl.Gold)
	rl.DrawText("Última: "+a.formatLap(a.frame.LastLap), x+10, y+38, 16, rl.White)

	best := "--"
	if a.session != nil {
		if b, ok := a.session.BestLap(); ok {
			best = a.formatLap(b)
		}
	}
	rl.DrawText("Melhor: "+best, x+10, y+60, 16, rl.Green)
}

func (a *App) formatLap(ticks int) string {
	if ticks <= 0 {
		return "--"
	}
	fps := a.Config.Window.TargetFPS
	if fps <= 0 {
		return fmt.Sprintf("%d ticks", ticks)
	}
	return fmt.Sprintf("%.2fs", float32(ticks)/float32(fps))
}

// drawPauseMenu desenha o menu de escape centralizado.
func (a *App) drawPauseMenu() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(0, 0, 0, 150))

	panelWidth := int32(400)
	panelHeight := int32(250)
	panelX := (screenWidth - panelWidth) / 2
	panelY := (screenHeight - panelHeight) / 2

	rl.DrawRectangle(panelX, panelY, panelWidth, panelHeight, rl.NewColor(30, 30, 35, 255))
	rl.DrawRectangleLines(panelX, panelY, panelWidth, panelHeight, rl.White)

	menuTitle := "PAUSA"
	titleWidth := rl.MeasureText(menuTitle, 24)
	rl.DrawText(menuTitle, panelX+(panelWidth-titleWidth)/2, panelY+30, 24, rl.Gold)

	buttonX := panelX + 50
	buttonWidth := panelWidth - 100
	buttonHeight := int32(40)

	if a.drawButton(buttonX, panelY+90, buttonWidth, buttonHeight, "RETOMAR (ESC)", rl.Green) {
		a.State = StateRunning
	}
	if a.drawButton(buttonX, panelY+150, buttonWidth, buttonHeight, "SAIR DO JOGO", rl.Red) {
		a.log.Info().Msg("encerrando aplicação pelo menu")
		a.quit = true
	}
}

// drawButton desenha um botão genérico com hover e retorna true se clicado.
func (a *App) drawButton(x, y, w, h int32, text string, color rl.Color) bool {
	mousePos := rl.GetMousePosition()
	isHover := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	drawColor := color
	if isHover {
		drawColor.R = min(drawColor.R, 225) + 30
		drawColor.G = min(drawColor.G, 225) + 30
		drawColor.B = min(drawColor.B, 225) + 30
	}

	rl.DrawRectangle(x, y, w, h, rl.NewColor(50, 50, 50, 255))
	rl.DrawRectangleLines(x, y, w, h, drawColor)

	textWidth := rl.MeasureText(text, 18)
	rl.DrawText(text, x+(w-textWidth)/2, y+(h-18)/2, 18, rl.White)

	return isHover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (a *App) drawLoadingScreen() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(20, 20, 25, 255))

	title := "VIRTUA RACING"
	titleWidth := rl.MeasureText(title, 40)
	rl.DrawText(title, (screenWidth-titleWidth)/2, screenHeight/2-60, 40, rl.Gold)

	status := "Carregando modelos e pista..."
	statusWidth := rl.MeasureText(status, 18)
	rl.DrawText(status, (screenWidth-statusWidth)/2, screenHeight/2+20, 18, rl.LightGray)
}
