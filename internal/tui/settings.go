// Package tui is the terminal settings editor: a Bubble Tea program with
// the same fields as the config window, an asciigraph plot of the
// visibility curve, and a braille-canvas live preview of the pulsing
// grid for machines where the raylib config window is unwelcome.
package tui

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/mkarren/pulsetile/internal/config"
	"github.com/mkarren/pulsetile/internal/geometry"
	"github.com/mkarren/pulsetile/internal/scene"
)

var (
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
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

// Preview pane size in terminal cells; the braille dot grid is 2x/4x.
const (
	previewCols = 44
	previewRows = 11
)

type model struct {
	cfg     *config.Settings
	path    string
	rng     *rand.Rand
	preview *scene.Scene
	canvas  *canvas
	cursor  int
	saved   bool
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Run edits cfg interactively and persists it to path when the user
// confirms with enter.
func Run(cfg *config.Settings, path string) error {
	out, err := tea.NewProgram(newModel(cfg, path)).Run()
	if err != nil {
		return err
	}
	if m, ok := out.(*model); ok && m.saved {
		fmt.Printf("settings saved to %s\n", path)
	}
	return nil
}

func newModel(cfg *config.Settings, path string) *model {
	m := &model{
		cfg:    cfg,
		path:   path,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		canvas: newCanvas(previewCols, previewRows),
	}
	m.rebuildPreview()
	return m
}

func (m *model) rebuildPreview() {
	// Scale the configured radius down so the dot grid shows a few rows
	// of cells no matter the setting.
	r := m.cfg.CellRadius / 4
	if r < 4 {
		r = 4
	}
	m.preview = scene.New(previewCols*2, previewRows*4, r, m.rng,
		scene.PaletteSource(m.cfg.Palette))
}

func (m *model) Init() tea.Cmd { return tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		m.preview.Advance(0.05, m.rng)
		return m, tick()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "enter":
		// Failure degrades to session-only settings, same as the GUI.
		if err := config.Save(m.path, m.cfg); err == nil {
			m.saved = true
		}
		return m, tea.Quit
	case "j", "down":
		m.cursor = (m.cursor + 1) % fieldCount
	case "k", "up":
		m.cursor--
		if m.cursor < 0 {
			m.cursor = fieldCount - 1
		}
	case "l", "right":
		m.adjust(+1)
	case "h", "left":
		m.adjust(-1)
	}
	return m, nil
}

func (m *model) adjust(dir int) {
	switch m.cursor {
	case fieldShape:
		if m.cfg.Shape == config.ShapeHexagon {
			m.cfg.Shape = config.ShapeHeart
		} else {
			m.cfg.Shape = config.ShapeHexagon
		}
	case fieldPalette:
		idx := 0
		for i, p := range palettes {
			if p == m.cfg.Palette {
				idx = i
			}
		}
		m.cfg.Palette = palettes[(idx+dir+len(palettes))%len(palettes)]
		m.rebuildPreview()
	case fieldThreshold:
		m.cfg.Threshold += 0.05 * float64(dir)
	case fieldRadius:
		m.cfg.CellRadius += 4 * float64(dir)
		if m.cfg.CellRadius > 80 {
			m.cfg.CellRadius = 80
		}
		m.cfg.Normalize()
		m.rebuildPreview()
	case fieldFPS:
		m.cfg.FPS += 5 * dir
		if m.cfg.FPS > 120 {
			m.cfg.FPS = 120
		}
	}
	m.cfg.Normalize()
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(white.Render("pulsetile") + dim.Render("  settings editor") + "\n\n")

	for f := 0; f < fieldCount; f++ {
		val := ""
		switch f {
		case fieldShape:
			val = string(m.cfg.Shape)
		case fieldPalette:
			val = m.cfg.Palette
		case fieldThreshold:
			val = fmt.Sprintf("%.2f", m.cfg.Threshold)
		case fieldRadius:
			val = fmt.Sprintf("%.0f", m.cfg.CellRadius)
		case fieldFPS:
			val = fmt.Sprintf("%d", m.cfg.FPS)
		}

		line := fmt.Sprintf("  %-12s %s", fieldNames[f], val)
		if f == m.cursor {
			b.WriteString(accent.Render("> "+line[2:]) + "\n")
		} else {
			b.WriteString(dim.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + dim.Render("pulse curve (one period)") + "\n")
	b.WriteString(dimmer.Render(m.curvePlot()) + "\n\n")

	b.WriteString(dim.Render("preview") + "\n")
	b.WriteString(m.renderPreview() + "\n\n")

	b.WriteString(dimmer.Render("J/K: SELECT  H/L: ADJUST  ENTER: SAVE  Q: QUIT"))
	return b.String()
}

// curvePlot samples one pulse period of the visibility function at the
// current threshold.
func (m *model) curvePlot() string {
	return CurvePlot(m.cfg.Threshold, 64, 8)
}

// CurvePlot renders the visibility curve for a threshold as an ascii
// graph spanning one full sine period.
func CurvePlot(threshold float64, width, height int) string {
	data := make([]float64, width)
	for i := range data {
		t := float64(i) / float64(width-1) * 2 * math.Pi
		// Sample by phase angle so the plot is independent of the
		// threshold-scaled wave speed.
		data[i] = scene.Visibility(0, t, threshold)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("opacity over one period, threshold %.2f", threshold)),
	)
}

func (m *model) renderPreview() string {
	m.canvas.clear()
	for i := range m.preview.Cells {
		c := &m.preview.Cells[i]
		if c.Opacity(m.preview.Time, m.cfg.Threshold) <= 0.01 {
			continue
		}
		m.drawOutline(c)
	}
	return m.canvas.String()
}

func (m *model) drawOutline(c *scene.Cell) {
	switch m.cfg.Shape {
	case config.ShapeHeart:
		pts := geometry.HeartPoints(c.Pos, c.Radius, 40)
		for i := 1; i < len(pts); i++ {
			m.canvas.line(int(pts[i-1].X), int(pts[i-1].Y), int(pts[i].X), int(pts[i].Y))
		}
	default:
		pts := geometry.HexagonPoints(c.Pos, c.Radius, 0)
		for i := range pts {
			next := pts[(i+1)%len(pts)]
			m.canvas.line(int(pts[i].X), int(pts[i].Y), int(next.X), int(next.Y))
		}
	}
}
