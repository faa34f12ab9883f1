package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgPanel  = rl.NewColor(18, 18, 24, 245)
	colorAccent   = rl.NewColor(108, 99, 255, 255)
	colorText     = rl.NewColor(200, 200, 208, 255)
	colorTextMain = rl.NewColor(255, 255, 255, 255)
	colorPrompt   = rl.NewColor(0, 228, 48, 255)
)

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextMain))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// hudLines is the help text for the current state.
func (g *Game) hudLines() []string {
	if !g.Cursor.Locked() {
		return []string{"Click to capture the mouse", "F1 to toggle collider view"}
	}
	return []string{"WASD to move, mouse to look", "Esc to release the mouse"}
}

// prompt is shown while a console is within reach.
func (g *Game) prompt() string {
	if g.nearby == 0 {
		return ""
	}
	return fmt.Sprintf("Press %s to interact", g.interactKeyName())
}

// targetLabel names the console under the crosshair.
func (g *Game) targetLabel() string {
	if target := g.lookingAt(); target != nil {
		return target.Name
	}
	return ""
}

func (g *Game) DrawUI() {
	y := int32(10)
	for _, line := range g.hudLines() {
		rl.DrawText(line, 10, y, 20, rl.LightGray)
		y += 25
	}
	rl.DrawFPS(10, y)

	cx, cy := int32(rl.GetScreenWidth())/2, int32(rl.GetScreenHeight())/2
	if label := g.targetLabel(); label != "" {
		w := rl.MeasureText(label, 18)
		rl.DrawText(label, cx-w/2, cy+16, 18, colorTextMain)
	}
	if p := g.prompt(); p != "" {
		w := rl.MeasureText(p, 24)
		rl.DrawText(p, cx-w/2, cy+40, 24, colorPrompt)
	}

	if g.Cursor.Locked() {
		rl.DrawLine(cx-6, cy, cx+6, cy, rl.White)
		rl.DrawLine(cx, cy-6, cx, cy+6, rl.White)
	} else {
		g.drawSettingsPanel()
	}

	if g.DebugMode {
		screenW := float32(rl.GetScreenWidth())
		x := int32(screenW) - 230
		rl.DrawText(fmt.Sprintf("Drawn:   %d (culled %d)", g.Renderer.Drawn, g.Renderer.Culled), x, 10, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Materials: %d", g.Materials.MaterialCount()), x, 30, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), x, 50, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), x, 70, 16, rl.Green)
		pos := g.World.Player.Transform.Position
		rl.DrawText(fmt.Sprintf("Pos: (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z), x, 90, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Grounded: %t", g.World.Physics.Grounded(g.World.Player)), x, 110, 16, rl.Yellow)
	}
}

// drawSettingsPanel is only interactive while the cursor is free.
func (g *Game) drawSettingsPanel() {
	bounds := rl.Rectangle{X: 10, Y: float32(rl.GetScreenHeight()) - 110, Width: 260, Height: 100}
	gui.Panel(bounds, "Settings")

	muted := g.Audio.Muted()
	if next := gui.CheckBox(rl.Rectangle{X: bounds.X + 10, Y: bounds.Y + 35, Width: 16, Height: 16}, "Mute", muted); next != muted {
		g.Audio.SetMuted(next)
		g.logger.Info("audio", "muted", next)
	}

	volume := float32(g.Audio.Volume())
	next := gui.Slider(rl.Rectangle{X: bounds.X + 70, Y: bounds.Y + 65, Width: 120, Height: 16},
		"Volume", fmt.Sprintf("%.0f%%", volume*100), volume, 0, 1)
	if next != volume {
		g.Audio.SetVolume(float64(next))
	}
}
