package scene

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorSource draws a random cell color. The core engine calls it with an
// injected rng; palette sources built on go-colorful's random generators
// ignore it and use the library's own randomness.
type ColorSource func(rng *rand.Rand) Color

// UniformColor draws each channel independently uniform in [0, 1].
func UniformColor(rng *rand.Rand) Color {
	return Color{
		R: rng.Float64(),
		G: rng.Float64(),
		B: rng.Float64(),
	}
}

func happyColor(*rand.Rand) Color {
	return fromColorful(colorful.FastHappyColor())
}

func warmColor(*rand.Rand) Color {
	return fromColorful(colorful.FastWarmColor())
}

func fromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B}
}

// PaletteSource maps a palette name to its color source. Unknown names
// fall back to the uniform source.
func PaletteSource(name string) ColorSource {
	switch name {
	case "happy":
		return happyColor
	case "warm":
		return warmColor
	default:
		return UniformColor
	}
}
