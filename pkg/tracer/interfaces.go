package tracer

import (
	"github.com/blox3d/luxtrace/pkg/core"
	"github.com/blox3d/luxtrace/pkg/material"
)

// Scene is the capability the tracer needs from geometry storage: a list of
// lights and a nearest-hit ray query. The tracer stays independent of how
// geometry is stored; a voxel grid here, but any intersector works.
type Scene interface {
	Lights() []Light
	CastRay(ray core.Ray, maxDistance float64) (RayHit, bool)
}

// RayHit contains information about a ray-surface intersection
type RayHit struct {
	Material material.Material
	Position core.Vec3
	Normal   core.Vec3 // Unit length, facing the ray
	Distance float64
}
