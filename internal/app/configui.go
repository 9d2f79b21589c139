package app

import (
	"fmt"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mkarren/pulsetile/internal/config"
	"github.com/mkarren/pulsetile/internal/render"
	"github.com/mkarren/pulsetile/internal/scene"
)

const (
	fieldShape = iota
	fieldPalette
	fieldThreshold
	fieldRadius
	fieldFPS
	fieldCount
)

var fieldNames = [fieldCount]string{"shape", "palette", "threshold", "cell radius", "fps"}

var palettes = []string{"uniform", "happy", "warm"}

const (
	cfgWinW, cfgWinH   = 800, 600
	previewX, previewY = 430, 90
	previewW, previewH = 340, 330
	sliderX, sliderW   = 170, 200
	rowH               = 46
	firstRowY          = 110
)

type configUI struct {
	cfg     *config.Settings
	path    string
	rng     *rand.Rand
	preview *scene.Scene
	sel     int
	drag    int // field index being slider-dragged, or -1
	done    bool
}

// RunConfig opens the settings window. Enter or the save button persists
// to path and exits; escape or cancel exits without writing. A save
// failure is ignored so the chosen settings still apply for this run.
func RunConfig(cfg *config.Settings, path string) {
	rl.InitWindow(cfgWinW, cfgWinH, "pulsetile settings")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	ui := &configUI{cfg: cfg, path: path, rng: newRng(), drag: -1}
	ui.rebuildPreview()

	for !rl.WindowShouldClose() && !ui.done {
		ui.update()
		ui.preview.Advance(float64(rl.GetFrameTime()), ui.rng)

		rl.BeginDrawing()
		rl.ClearBackground(colBg)
		ui.draw()
		rl.EndDrawing()
	}
}

func (ui *configUI) rebuildPreview() {
	ui.preview = scene.New(previewW, previewH, ui.cfg.CellRadius,
		ui.rng, scene.PaletteSource(ui.cfg.Palette))
	for i := range ui.preview.Cells {
		ui.preview.Cells[i].Pos.X += previewX
		ui.preview.Cells[i].Pos.Y += previewY
	}
}

func (ui *configUI) update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.done = true
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		ui.save()
		return
	}

	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		ui.sel = (ui.sel + 1) % fieldCount
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		ui.sel--
		if ui.sel < 0 {
			ui.sel = fieldCount - 1
		}
	}
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
		ui.adjust(ui.sel, +1)
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
		ui.adjust(ui.sel, -1)
	}

	ui.updateMouse()
}

func (ui *configUI) updateMouse() {
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		switch {
		case rl.CheckCollisionPointRec(mouse, ui.rowRect(fieldShape)):
			ui.sel = fieldShape
			ui.adjust(fieldShape, +1)
		case rl.CheckCollisionPointRec(mouse, ui.rowRect(fieldPalette)):
			ui.sel = fieldPalette
			ui.adjust(fieldPalette, +1)
		case rl.CheckCollisionPointRec(mouse, ui.sliderRect(fieldThreshold)):
			ui.sel, ui.drag = fieldThreshold, fieldThreshold
		case rl.CheckCollisionPointRec(mouse, ui.sliderRect(fieldRadius)):
			ui.sel, ui.drag = fieldRadius, fieldRadius
		case rl.CheckCollisionPointRec(mouse, ui.sliderRect(fieldFPS)):
			ui.sel, ui.drag = fieldFPS, fieldFPS
		case rl.CheckCollisionPointRec(mouse, ui.saveRect()):
			ui.save()
		case rl.CheckCollisionPointRec(mouse, ui.cancelRect()):
			ui.done = true
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		ui.drag = -1
	}

	if ui.drag >= 0 && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		frac := float64(mouse.X-sliderX) / sliderW
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		switch ui.drag {
		case fieldThreshold:
			ui.cfg.Threshold = frac
		case fieldRadius:
			ui.cfg.CellRadius = config.MinCellRadius + frac*(80-config.MinCellRadius)
			ui.rebuildPreview()
		case fieldFPS:
			ui.cfg.FPS = config.MinFPS + int(frac*float64(120-config.MinFPS))
		}
	}
}

func (ui *configUI) adjust(field, dir int) {
	switch field {
	case fieldShape:
		if ui.cfg.Shape == config.ShapeHexagon {
			ui.cfg.Shape = config.ShapeHeart
		} else {
			ui.cfg.Shape = config.ShapeHexagon
		}
	case fieldPalette:
		idx := 0
		for i, p := range palettes {
			if p == ui.cfg.Palette {
				idx = i
			}
		}
		idx = (idx + dir + len(palettes)) % len(palettes)
		ui.cfg.Palette = palettes[idx]
		ui.rebuildPreview()
	case fieldThreshold:
		ui.cfg.Threshold += 0.05 * float64(dir)
	case fieldRadius:
		ui.cfg.CellRadius += 4 * float64(dir)
		if ui.cfg.CellRadius > 80 {
			ui.cfg.CellRadius = 80
		}
		ui.cfg.Normalize()
		ui.rebuildPreview()
	case fieldFPS:
		ui.cfg.FPS += 5 * dir
		if ui.cfg.FPS > 120 {
			ui.cfg.FPS = 120
		}
	}
	ui.cfg.Normalize()
}

func (ui *configUI) save() {
	_ = config.Save(ui.path, ui.cfg)
	ui.done = true
}

func (ui *configUI) rowRect(field int) rl.Rectangle {
	return rl.NewRectangle(30, float32(firstRowY+field*rowH-6), 370, rowH-8)
}

func (ui *configUI) sliderRect(field int) rl.Rectangle {
	return rl.NewRectangle(sliderX, float32(firstRowY+field*rowH), sliderW, 16)
}

func (ui *configUI) saveRect() rl.Rectangle {
	return rl.NewRectangle(30, 520, 140, 36)
}

func (ui *configUI) cancelRect() rl.Rectangle {
	return rl.NewRectangle(190, 520, 140, 36)
}

func (ui *configUI) draw() {
	rl.DrawText("pulsetile", 30, 30, 32, colSelect)
	rl.DrawText("settings", 190, 42, 16, colText)

	for f := 0; f < fieldCount; f++ {
		y := int32(firstRowY + f*rowH)
		nameCol := colText
		if f == ui.sel {
			nameCol = colSelect
			rl.DrawText(">", 14, y, 16, colSelect)
		}
		rl.DrawText(fieldNames[f], 30, y, 16, nameCol)

		switch f {
		case fieldShape:
			rl.DrawText(string(ui.cfg.Shape), sliderX, y, 16, colAccent)
		case fieldPalette:
			rl.DrawText(ui.cfg.Palette, sliderX, y, 16, colAccent)
		case fieldThreshold:
			ui.drawSlider(f, ui.cfg.Threshold, fmt.Sprintf("%.2f", ui.cfg.Threshold))
		case fieldRadius:
			frac := (ui.cfg.CellRadius - config.MinCellRadius) / (80 - config.MinCellRadius)
			ui.drawSlider(f, frac, fmt.Sprintf("%.0f", ui.cfg.CellRadius))
		case fieldFPS:
			frac := float64(ui.cfg.FPS-config.MinFPS) / float64(120-config.MinFPS)
			ui.drawSlider(f, frac, fmt.Sprintf("%d", ui.cfg.FPS))
		}
	}

	// Preview pane: a live miniature of the tiling, clipped to its frame.
	rl.DrawRectangleLines(previewX-4, previewY-4, previewW+8, previewH+8, colTextDim)
	rl.BeginScissorMode(previewX, previewY, previewW, previewH)
	render.Scene(ui.preview, ui.cfg.Shape, ui.cfg.Threshold)
	rl.EndScissorMode()
	rl.DrawText("preview", previewX, previewY+previewH+10, 14, colTextDim)

	ui.drawButton(ui.saveRect(), "SAVE")
	ui.drawButton(ui.cancelRect(), "CANCEL")

	rl.DrawText("J/K: SELECT  H/L: ADJUST  ENTER: SAVE  ESC: CANCEL", 30, 572, 14, colTextDim)
}

func (ui *configUI) drawSlider(field int, frac float64, label string) {
	r := ui.sliderRect(field)
	rl.DrawRectangleLines(int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height), colTextDim)
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(frac*float64(r.Width)), int32(r.Height), colAccent)
	rl.DrawText(label, int32(r.X+r.Width)+12, int32(r.Y), 16, colText)
}

func (ui *configUI) drawButton(r rl.Rectangle, label string) {
	col := colText
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), r) {
		col = colSelect
	}
	rl.DrawRectangleLines(int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height), col)
	w := rl.MeasureText(label, 16)
	rl.DrawText(label, int32(r.X)+(int32(r.Width)-w)/2, int32(r.Y)+10, 16, col)
}
