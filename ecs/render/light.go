package render

import (
	"image/color"

	"github.com/chewxy/math32"
)

// RGB is a linear color with channels in [0,1].
type RGB struct {
	R, G, B float32
}

func FromColor(c color.RGBA) RGB {
	return RGB{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255}
}

func (c RGB) Scale(s float32) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

func (c RGB) Add(o RGB) RGB {
	return RGB{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c RGB) Mul(o RGB) RGB {
	return RGB{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Clamp limits every channel to [0,1].
func (c RGB) Clamp() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

func (c RGB) RGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{R: uint8(c.R*255 + 0.5), G: uint8(c.G*255 + 0.5), B: uint8(c.B*255 + 0.5), A: 0xff}
}

type DirectionalLight struct {
	// Position the light shines from; direction is Position -> origin.
	Position  Vec3
	Color     RGB
	Intensity float32
}

type PointLight struct {
	Position  Vec3
	Color     RGB
	Intensity float32
	Distance  float32
	Decay     float32
}

// Lighting is every light affecting a frame.
type Lighting struct {
	Ambient     RGB
	Directional []DirectionalLight
	Points      []PointLight
}

// Shade returns the Lambert color of a surface point p with unit normal n.
func (l Lighting) Shade(base RGB, p, n Vec3) RGB {
	irr := l.Ambient
	for _, d := range l.Directional {
		dir := d.Position.Normalize()
		if ndl := n.Dot(dir); ndl > 0 {
			irr = irr.Add(d.Color.Scale(d.Intensity * ndl))
		}
	}
	for _, pl := range l.Points {
		toLight := pl.Position.Sub(p)
		dist := toLight.Length()
		if dist == 0 {
			continue
		}
		ndl := n.Dot(toLight.Scale(1 / dist))
		if ndl <= 0 {
			continue
		}
		irr = irr.Add(pl.Color.Scale(pl.Intensity * ndl * Attenuation(dist, pl.Distance, pl.Decay)))
	}
	return base.Mul(irr).Clamp()
}

// Attenuation fades a point light to zero at cutoff. A zero cutoff never fades.
func Attenuation(dist, cutoff, decay float32) float32 {
	if cutoff <= 0 {
		return 1
	}
	if decay <= 0 {
		decay = 1
	}
	return math32.Pow(clamp01(1-dist/cutoff), decay)
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}
