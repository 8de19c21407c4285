//go:build ebiten

package app

import (
	"image/color"
	"time"

	"pineapples/internal/core"
	"pineapples/internal/render"
	"pineapples/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a greenhouse sim to the ebiten.Game interface. Every left
// click inside the grid becomes one Click command.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette []color.RGBA

	scale    int
	hudWidth int
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, hudWidth int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		sim:      sim,
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, hudWidth),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
	if provider, ok := sim.(paletteProvider); ok {
		g.palette = provider.Palette()
	}
	g.resizePainter()
	return g
}

// Reset reinitializes the greenhouse with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.resizePainter()
	ebiten.SetWindowSize(g.Layout(0, 0))
}

func (g *Game) resizePainter() {
	size := g.sim.Size()
	if g.painter != nil {
		if w, h := g.painter.Size(); w == size.W && h == size.H {
			return
		}
	}
	g.painter = render.NewGridPainter(size.W, size.H)
}

// Update handles input for the current frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	size := g.sim.Size()
	if g.hud.Update(size.W * g.scale) {
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := render.CellAt(x, y, g.scale, size.W, size.H); ok {
			g.sim.Click(row, col)
		}
	}
	return nil
}

// Draw renders the current greenhouse state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, screen.Bounds().Dy())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H*g.scale + hudMinHeight(s.H*g.scale)
}

// hudMinHeight pads small grids so the HUD panel fits.
func hudMinHeight(gridHeight int) int {
	const minHeight = 420
	if gridHeight >= minHeight {
		return 0
	}
	return minHeight - gridHeight
}
