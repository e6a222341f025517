package tracer

import "github.com/blox3d/luxtrace/pkg/core"

// Light is a closed set of light source variants evaluated during direct
// lighting. Evaluation order never affects the additive result.
type Light interface {
	light()
}

// AmbientLight contributes a constant term with no shadow test
type AmbientLight struct {
	Color     core.Color
	Intensity float64
}

// DirectionalLight shines from an infinitely distant source along Direction.
// Direction must be unit-length.
type DirectionalLight struct {
	Direction core.Vec3
	Color     core.Color
	Intensity float64
}

// PointLight radiates from Position with inverse-square falloff
type PointLight struct {
	Position  core.Vec3
	Color     core.Color
	Intensity float64
}

func (AmbientLight) light()     {}
func (DirectionalLight) light() {}
func (PointLight) light()       {}
