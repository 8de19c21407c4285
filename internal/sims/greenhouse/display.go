package greenhouse

import (
	"image/color"

	"pineapples/pkg/garden"
)

const (
	displayStatusMask  = 0x03
	displayRadiatorBit = 0x04
	displayClickedBit  = 0x08
	displayPaletteSize = 16
)

var greenhousePalette = buildGreenhousePalette()

// Palette exposes the color palette used for rendering the greenhouse.
func (w *World) Palette() []color.RGBA {
	return greenhousePalette
}

func buildGreenhousePalette() []color.RGBA {
	palette := make([]color.RGBA, displayPaletteSize)
	for i := range palette {
		status := garden.GrowthStatus(i & displayStatusMask)
		radiator := i&displayRadiatorBit != 0
		clicked := i&displayClickedBit != 0
		palette[i] = toRGBA(paletteColorFor(status, radiator, clicked))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func paletteColorFor(status garden.GrowthStatus, radiator, clicked bool) color.NRGBA {
	base := statusColor(status)
	if radiator {
		base = blendColors(base, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 0.35)
	}
	if clicked {
		base = blendColors(base, color.NRGBA{R: 120, G: 80, B: 200, A: 255}, 0.5)
	}
	return base
}

// statusColor maps growth status to lightblue, green, orange and red.
func statusColor(status garden.GrowthStatus) color.NRGBA {
	switch status {
	case garden.Fruiting:
		return color.NRGBA{R: 0, G: 128, B: 0, A: 255}
	case garden.TooHot:
		return color.NRGBA{R: 255, G: 165, B: 0, A: 255}
	case garden.Overheated:
		return color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	default:
		return color.NRGBA{R: 173, G: 216, B: 230, A: 255}
	}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	mix := func(a, b uint8) uint8 { return uint8(float64(a)*inv + float64(b)*w + 0.5) }
	return color.NRGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: mix(base.A, overlay.A),
	}
}

func encodeDisplayValue(status garden.GrowthStatus, radiator, clicked bool) uint8 {
	value := uint8(status) & displayStatusMask
	if radiator {
		value |= displayRadiatorBit
	}
	if clicked {
		value |= displayClickedBit
	}
	return value
}

// DecodeDisplayValue splits a display byte back into its parts.
func DecodeDisplayValue(v uint8) (status garden.GrowthStatus, radiator, clicked bool) {
	return garden.GrowthStatus(v & displayStatusMask), v&displayRadiatorBit != 0, v&displayClickedBit != 0
}

func (w *World) rebuildDisplay(m garden.Model) {
	for c, cell := range m.Grid.All() {
		status, _ := m.Grid.Status(c)
		w.display.Set(c.Row, c.Col, encodeDisplayValue(status.Kind, cell.Radiators > 0, cell.Clicks > 0))
	}
}
