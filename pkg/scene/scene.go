// Package scene ties a voxel world, its block materials and a set of lights
// into the scene capability consumed by the tracer.
package scene

import (
	"math"

	"github.com/blox3d/luxtrace/pkg/core"
	"github.com/blox3d/luxtrace/pkg/tracer"
	"github.com/blox3d/luxtrace/pkg/voxel"
)

// Scene implements tracer.Scene over a voxel grid. It is read-only during a
// render; the owning application may mutate the grid between renders.
type Scene struct {
	intersector *voxel.Intersector
	lights      []tracer.Light
}

// New creates a scene from a block source, a material sampler and lights
func New(source voxel.BlockSource, sampler voxel.MaterialSampler, lights []tracer.Light) *Scene {
	return &Scene{
		intersector: voxel.NewIntersector(source, sampler),
		lights:      lights,
	}
}

// Lights returns the scene's light list
func (s *Scene) Lights() []tracer.Light {
	return s.lights
}

// CastRay returns the nearest voxel hit along ray within maxDistance
func (s *Scene) CastRay(ray core.Ray, maxDistance float64) (tracer.RayHit, bool) {
	return s.intersector.CastRay(ray, maxDistance)
}

// DefaultLights returns the demo light rig: a soft ambient fill, a sun
// shining diagonally across the world and a point light above the pool.
func DefaultLights() []tracer.Light {
	return []tracer.Light{
		tracer.AmbientLight{
			Color:     core.White,
			Intensity: 0.25,
		},
		tracer.DirectionalLight{
			Direction: core.NewVec3(1, -0.5, -1).Normalize(),
			Color:     core.White,
			Intensity: 2.5,
		},
		tracer.PointLight{
			Position:  core.NewVec3(11.5, 5.5, 7.5),
			Color:     core.NewColor(1, 0.9, 0.7),
			Intensity: 200 * math.Pi,
		},
	}
}
