package main

import (
	"fmt"
	"hash/fnv"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/maccam912/evo-islands-go/pkg/gridworld"
	"github.com/maccam912/evo-islands-go/pkg/simulation"
)

// cellSize is the on-screen pixel size of one grid tile.
const cellSize = 4

var (
	emptyColor = color.RGBA{20, 20, 30, 255}
	plantColor = color.RGBA{34, 120, 40, 255}
	foodColor  = color.RGBA{200, 160, 40, 255}
	gridColor  = color.RGBA{40, 40, 55, 255}
)

// game wires one local, non-networked Simulation into Ebiten's Update/Draw/Layout
// loop. Space pauses/resumes the run and G toggles a reference grid; there is
// no reset or color-scheme machinery, and lineages are colored
// deterministically rather than picked from a gradient.
type game struct {
	sim       *simulation.Simulation
	paused    bool
	showGrid  bool
	keyStates map[ebiten.Key]bool
}

func newGame(sim *simulation.Simulation) *game {
	return &game{sim: sim, keyStates: make(map[ebiten.Key]bool)}
}

func (g *game) isKeyJustPressed(key ebiten.Key) bool {
	was := g.keyStates[key]
	is := ebiten.IsKeyPressed(key)
	g.keyStates[key] = is
	return is && !was
}

func (g *game) Update() error {
	if g.isKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.isKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if g.paused {
		return nil
	}
	if g.sim.Step < g.sim.Config.MaxSteps && !g.sim.ShouldStop() {
		g.sim.Tick()
		g.sim.Step++
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(emptyColor)
	g.drawTiles(screen)
	if g.showGrid {
		g.drawGrid(screen)
	}
	g.drawCreatures(screen)
	g.drawStats(screen)
}

// drawGrid draws a reference line every 10 tiles, toggled with G.
func (g *game) drawGrid(screen *ebiten.Image) {
	w := g.sim.World
	for x := 0; x <= w.Width; x += 10 {
		ebitenutil.DrawLine(screen, float64(x*cellSize), 0, float64(x*cellSize), float64(w.Height*cellSize), gridColor)
	}
	for y := 0; y <= w.Height; y += 10 {
		ebitenutil.DrawLine(screen, 0, float64(y*cellSize), float64(w.Width*cellSize), float64(y*cellSize), gridColor)
	}
}

func (g *game) drawTiles(screen *ebiten.Image) {
	w := g.sim.World
	for x := 0; x < w.Width; x++ {
		for y := 0; y < w.Height; y++ {
			switch w.TileAt(x, y).Kind {
			case gridworld.Plant:
				fillCell(screen, x, y, plantColor)
			case gridworld.Food:
				fillCell(screen, x, y, foodColor)
			}
		}
	}
}

func (g *game) drawCreatures(screen *ebiten.Image) {
	for _, c := range g.sim.Creatures {
		fillCell(screen, c.X, c.Y, lineageColor(c.LineageID))
	}
}

func fillCell(screen *ebiten.Image, x, y int, clr color.Color) {
	px, py := x*cellSize, y*cellSize
	for dy := 0; dy < cellSize; dy++ {
		for dx := 0; dx < cellSize; dx++ {
			screen.Set(px+dx, py+dy, clr)
		}
	}
}

// lineageColor derives a stable color from a lineage id by hashing it into a
// hue. Two different ids almost never collide in color; the same id always
// draws the same color across frames and runs.
func lineageColor(lineageID string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(lineageID))
	hue := float64(h.Sum32() % 360)
	return hslToRGB(hue, 0.65, 0.55)
}

// hslToRGB converts a hue in [0,360) and saturation/lightness in [0,1] to an
// RGB color. Ported from the teacher's concentration-gradient color code,
// trimmed to the one conversion direction cmd/visualizer needs.
func hslToRGB(h, s, l float64) color.RGBA {
	c := (1 - abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - abs(mod2(hp)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return color.RGBA{
		R: toByte(r + m),
		G: toByte(g + m),
		B: toByte(b + m),
		A: 255,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func mod2(v float64) float64 {
	for v >= 2 {
		v -= 2
	}
	return v
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

func (g *game) drawStats(screen *ebiten.Image) {
	lineages := make(map[string]int)
	for _, c := range g.sim.Creatures {
		lineages[c.LineageID]++
	}
	stats := []string{
		fmt.Sprintf("step %d/%d", g.sim.Step, g.sim.Config.MaxSteps),
		fmt.Sprintf("creatures: %d", len(g.sim.Creatures)),
		fmt.Sprintf("lineages: %d", len(lineages)),
		fmt.Sprintf("paused: %v", g.paused),
		"space: pause/resume, g: toggle grid",
	}
	for i, s := range stats {
		ebitenutil.DebugPrintAt(screen, s, 10, 10+i*16)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sim.World.Width * cellSize, g.sim.World.Height * cellSize
}
