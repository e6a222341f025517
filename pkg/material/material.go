package material

import "github.com/blox3d/luxtrace/pkg/core"

// Material describes how a surface responds to light. It is a closed set of
// variants; the tracer switches on the concrete type.
type Material interface {
	material()
}

// Diffuse is a matte surface shaded with Lambertian direct lighting only
type Diffuse struct {
	Albedo core.Color
}

// Reflective is a mirror-like surface that mixes local shading with a traced
// reflection. Reflectivity 0 behaves exactly like Diffuse, 1 is a perfect
// mirror.
type Reflective struct {
	Albedo       core.Color
	Reflectivity float64 // [0,1]
}

// Refractive is a transparent dielectric like water or glass. Index must be
// greater than 1.
type Refractive struct {
	Albedo       core.Color
	Index        float64
	Transparency float64 // [0,1]
}

func (Diffuse) material()    {}
func (Reflective) material() {}
func (Refractive) material() {}

// NewDiffuse creates a new diffuse material
func NewDiffuse(albedo core.Color) Diffuse {
	return Diffuse{Albedo: albedo}
}

// NewReflective creates a new reflective material
func NewReflective(albedo core.Color, reflectivity float64) Reflective {
	return Reflective{Albedo: albedo, Reflectivity: reflectivity}
}

// NewRefractive creates a new refractive material
func NewRefractive(albedo core.Color, index, transparency float64) Refractive {
	return Refractive{Albedo: albedo, Index: index, Transparency: transparency}
}
