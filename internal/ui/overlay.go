//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"pineapples/internal/core"
	"pineapples/pkg/garden"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type modelProvider interface {
	Model() garden.Model
}

// Overlay labels every cell with its capacity (or click count in the counter
// variant) and, when toggled with H, its current heat.
type Overlay struct {
	sim      core.Sim
	scale    int
	showHeat bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay's key toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the cell labels and grid lines onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(modelProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	m := provider.Model()
	width, height := m.Grid.Dimensions()
	o.drawGridLines(screen, width, height, scale)

	face := basicfont.Face7x13
	for c, cell := range m.Grid.All() {
		x := c.Col * scale
		y := c.Row * scale
		label := strconv.FormatUint(uint64(cell.Capacity), 10)
		if m.Mode == garden.ModeCounter {
			label = strconv.FormatUint(uint64(cell.Clicks), 10)
		}
		bounds := text.BoundString(face, label)
		text.Draw(screen, label, face, x+(scale-bounds.Dx())/2, y+(scale+bounds.Dy())/2, labelInk)

		if o.showHeat {
			heat := "h" + strconv.FormatUint(uint64(m.Grid.Heat(c)), 10)
			text.Draw(screen, heat, face, x+3, y+13, heatInk)
		}
		if cell.Radiators > 0 {
			o.fillRect(screen, x+scale-10, y+4, 6, 6, radiatorInk)
		}
	}
}

func (o *Overlay) drawGridLines(screen *ebiten.Image, width, height, scale int) {
	for col := 1; col < width; col++ {
		o.fillRect(screen, col*scale, 0, 1, height*scale, gridInk)
	}
	for row := 1; row < height; row++ {
		o.fillRect(screen, 0, row*scale, width*scale, 1, gridInk)
	}
}

func (o *Overlay) fillRect(dst *ebiten.Image, x, y, w, h int, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(o.pixel, op)
}

var (
	labelInk    = color.RGBA{R: 20, G: 20, B: 24, A: 255}
	heatInk     = color.RGBA{R: 60, G: 20, B: 20, A: 255}
	radiatorInk = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	gridInk     = color.RGBA{R: 40, G: 40, B: 48, A: 255}
)
