// Package app hosts the raylib window modes: the fullscreen saver loop,
// a windowed debug loop, and the configuration window. All modes share
// one frame-driven Update/Draw structure; the animation core never
// touches raylib directly.
package app

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mkarren/pulsetile/internal/config"
	"github.com/mkarren/pulsetile/internal/render"
	"github.com/mkarren/pulsetile/internal/scene"
)

// Theme colors for the config and debug overlays.
var (
	colBg      = rl.NewColor(10, 10, 10, 255)
	colAccent  = rl.NewColor(180, 180, 180, 255)
	colSelect  = rl.NewColor(255, 255, 255, 255)
	colText    = rl.NewColor(140, 140, 140, 255)
	colTextDim = rl.NewColor(60, 60, 60, 255)
)

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// inputWatcher implements the saver exit policy: escape, any mouse
// button, or a second distinct mouse-movement sample. The first movement
// away from the startup position is recorded and tolerated; any movement
// after that ends the session.
type inputWatcher struct {
	baseline rl.Vector2
	moved    bool
	movedPos rl.Vector2
}

func newInputWatcher() *inputWatcher {
	return &inputWatcher{baseline: rl.GetMousePosition()}
}

func (w *inputWatcher) interrupted() bool {
	if rl.IsKeyPressed(rl.KeyEscape) {
		return true
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) ||
		rl.IsMouseButtonPressed(rl.MouseRightButton) ||
		rl.IsMouseButtonPressed(rl.MouseMiddleButton) {
		return true
	}

	pos := rl.GetMousePosition()
	if !w.moved {
		if pos != w.baseline {
			w.moved = true
			w.movedPos = pos
		}
		return false
	}
	return pos != w.movedPos
}

// RunSaver runs the fullscreen screensaver until user activity.
func RunSaver(cfg *config.Settings) {
	rl.SetConfigFlags(rl.FlagFullscreenMode)
	rl.InitWindow(0, 0, "pulsetile")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
	rl.HideCursor()

	rng := newRng()
	sc := scene.New(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()),
		cfg.CellRadius, rng, scene.PaletteSource(cfg.Palette))

	watch := newInputWatcher()
	for !rl.WindowShouldClose() {
		if watch.interrupted() {
			break
		}

		sc.Advance(float64(rl.GetFrameTime()), rng)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		render.Scene(sc, cfg.Shape, cfg.Threshold)
		rl.EndDrawing()
	}
}

// RunDebug runs the animation in a regular window with a small overlay.
// Space pauses, escape quits.
func RunDebug(cfg *config.Settings) {
	rl.InitWindow(1280, 720, "pulsetile")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)

	rng := newRng()
	sc := scene.New(1280, 720, cfg.CellRadius, rng, scene.PaletteSource(cfg.Palette))

	paused := false
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}

		if !paused {
			sc.Advance(float64(rl.GetFrameTime()), rng)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		render.Scene(sc, cfg.Shape, cfg.Threshold)

		status := "RUNNING"
		col := colText
		if paused {
			status = "PAUSED"
			col = colTextDim
		}
		rl.DrawText("pulsetile", 20, 20, 20, colSelect)
		rl.DrawText(status, 140, 24, 14, col)
		rl.DrawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 20, 660, 14, colTextDim)
		rl.DrawText("[SPACE] PAUSE  [ESC] QUIT", 20, 690, 14, colTextDim)
		rl.EndDrawing()
	}
}
