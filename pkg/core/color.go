package core

// Color is a physically linear RGB triple. Channels are unclamped and may
// exceed [0,1] during shading; conversion to a display range happens outside
// the tracing core.
type Color struct {
	R, G, B float64
}

// Predefined colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new linear color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Mul returns the component-wise product of two colors
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Divide returns the color scaled by 1/s
func (c Color) Divide(s float64) Color {
	return Color{c.R / s, c.G / s, c.B / s}
}

// Mix linearly interpolates between a and b: a*(1-t) + b*t.
// The interpolation is affine for any t, including values outside [0,1].
func Mix(a, b Color, t float64) Color {
	nt := 1.0 - t
	return Color{
		R: a.R*nt + b.R*t,
		G: a.G*nt + b.G*t,
		B: a.B*nt + b.B*t,
	}
}
