package material

import "github.com/blox3d/luxtrace/pkg/core"

// Texture is a flat array of linear texels sampled with nearest-neighbor
// filtering. Texels are stored row-major: Texels[y*Width + x].
type Texture struct {
	Width  int
	Height int
	Texels []core.Color
}

// NewTexture creates a new texture from row-major linear texels
func NewTexture(width, height int, texels []core.Color) *Texture {
	return &Texture{Width: width, Height: height, Texels: texels}
}

// NewSolidTexture creates a 1x1 texture of a single color
func NewSolidTexture(c core.Color) *Texture {
	return &Texture{Width: 1, Height: 1, Texels: []core.Color{c}}
}

// Sample returns the texel nearest to the given UV coordinates. UVs are
// wrapped into [0,1) and mapped by floor(uv*size), clamped to the last texel.
// No filtering is applied.
func (t *Texture) Sample(uv core.Vec2) core.Color {
	u := uv.X - float64(int(uv.X))
	v := uv.Y - float64(int(uv.Y))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v += 1.0
	}

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Texels[y*t.Width+x]
}
