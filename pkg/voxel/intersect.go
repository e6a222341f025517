package voxel

import (
	"math"

	"github.com/blox3d/luxtrace/pkg/core"
	"github.com/blox3d/luxtrace/pkg/material"
	"github.com/blox3d/luxtrace/pkg/tracer"
)

// originEpsilon nudges a clamped ray origin inside the grid so boundary
// rounding cannot place the start cell on the wrong side of an edge.
const originEpsilon = 1e-3

// MaterialSampler resolves the material of a voxel face. The grid itself
// stores only block ids; textures and material kinds live outside it.
type MaterialSampler interface {
	Sample(block Block, face Face, uv core.Vec2) material.Material
}

// Intersector answers nearest-hit ray queries against a voxel grid by
// marching the ray cell boundary by cell boundary.
type Intersector struct {
	source  BlockSource
	sampler MaterialSampler
}

// NewIntersector creates a new intersector over a block source
func NewIntersector(source BlockSource, sampler MaterialSampler) *Intersector {
	return &Intersector{source: source, sampler: sampler}
}

// CastRay walks the grid along ray and returns the nearest voxel-face hit
// within maxDistance, or false if the ray leaves the world. Back faces are
// never reported: an accepted hit always has dot(ray.Direction, normal) < 0.
func (it *Intersector) CastRay(ray core.Ray, maxDistance float64) (tracer.RayHit, bool) {
	size := it.source.Size()

	position, ok := clampOrigin(ray, size)
	if !ok {
		return tracer.RayHit{}, false
	}

	// Floor to block coordinates, clamping to the last valid cell per axis
	// to guard boundary rounding
	floored := position.Floor()
	block := NewCoord(
		min(int(floored.X), size-1),
		min(int(floored.Y), size-1),
		min(int(floored.Z), size-1),
	)

	distance := ray.Origin.Distance(position)

	for distance <= maxDistance {
		current, ok := it.source.Block(block)
		if !ok {
			// Left the grid: the ray exits the world
			return tracer.RayHit{}, false
		}

		if current != Air {
			face, uv := resolveFace(position, block)
			normal := face.Normal()

			// Reject back faces
			if normal.Dot(ray.Direction) < 0 {
				return tracer.RayHit{
					Material: it.sampler.Sample(current, face, uv),
					Position: position,
					Normal:   normal,
					Distance: distance,
				}, true
			}
		}

		// Advance to the nearest cell boundary over the three axes; ties
		// resolve in fixed X,Y,Z order
		bestTime := math.Inf(1)
		step := Coord{}
		for axis := 0; axis < 3; axis++ {
			time, delta := timeToEdge(position.Axis(axis), block.Axis(axis), ray.Direction.Axis(axis))
			if time < bestTime {
				bestTime = time
				step = Coord{}
				switch axis {
				case 0:
					step.X = delta
				case 1:
					step.Y = delta
				case 2:
					step.Z = delta
				}
			}
		}

		position = position.Add(ray.Direction.Multiply(bestTime))
		distance += bestTime
		block = block.Add(step)
	}

	return tracer.RayHit{}, false
}

// clampOrigin returns the ray origin if it is already inside [0,size)³, or
// the entry point of the ray into the grid plus a small epsilon. Returns
// false when the ray misses the grid entirely.
func clampOrigin(ray core.Ray, size int) (core.Vec3, bool) {
	s := float64(size)
	inside := ray.Origin.X >= 0 && ray.Origin.X < s &&
		ray.Origin.Y >= 0 && ray.Origin.Y < s &&
		ray.Origin.Z >= 0 && ray.Origin.Z < s
	if inside {
		return ray.Origin, true
	}

	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		t1, t2, ok := slabInterval(ray.Origin.Axis(axis), ray.Direction.Axis(axis), s)
		if !ok {
			return core.Vec3{}, false
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
	}
	if tMin > tMax {
		return core.Vec3{}, false
	}

	entry := ray.At(tMin).Add(core.NewVec3(originEpsilon, originEpsilon, originEpsilon))
	return entry, true
}

// slabInterval computes the parameter interval where the ray is inside the
// slab [0,size) on one axis. A zero-speed axis is always in range if the
// origin coordinate already is, and never otherwise.
func slabInterval(start, speed, size float64) (float64, float64, bool) {
	if (start < 0 && speed <= 0) || (start > size && speed >= 0) {
		return 0, 0, false
	}
	if speed == 0 {
		if start >= 0 && start < size {
			return math.Inf(-1), math.Inf(1), true
		}
		return 0, 0, false
	}

	t1 := -start / speed
	t2 := (size - start) / speed
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return math.Max(t1, 0), t2, true
}

// timeToEdge returns the ray-parameter time until the next cell boundary on
// one axis together with the signed unit step across it. A zero direction
// component never crosses.
func timeToEdge(pos float64, block int, speed float64) (float64, int) {
	switch {
	case speed > 0:
		return (float64(block) + 1 - pos) / speed, 1
	case speed < 0:
		return (float64(block) - pos) / speed, -1
	default:
		return math.Inf(1), 0
	}
}
