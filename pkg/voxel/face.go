package voxel

import (
	"math"

	"github.com/blox3d/luxtrace/pkg/core"
)

// Face identifies one of the six sides of a unit voxel cell
type Face uint8

// Voxel faces, named after their outward normal
const (
	FaceXNeg Face = iota
	FaceXPos
	FaceYNeg
	FaceYPos
	FaceZNeg
	FaceZPos
)

var faceNormals = [6]core.Vec3{
	{X: -1}, {X: 1},
	{Y: -1}, {Y: 1},
	{Z: -1}, {Z: 1},
}

// Normal returns the face's outward unit normal
func (f Face) Normal() core.Vec3 {
	return faceNormals[f]
}

// resolveFace picks the nearest of the six boundary planes of the cell at
// block to the given position, returning the face together with a
// face-local UV in [0,1)².
func resolveFace(position core.Vec3, block Coord) (Face, core.Vec2) {
	rel := position.Subtract(core.NewVec3(float64(block.X), float64(block.Y), float64(block.Z)))

	face := FaceXNeg
	best := math.Abs(rel.X)
	for f, dis := range [6]float64{
		math.Abs(rel.X), math.Abs(1 - rel.X),
		math.Abs(rel.Y), math.Abs(1 - rel.Y),
		math.Abs(rel.Z), math.Abs(1 - rel.Z),
	} {
		if dis < best {
			best = dis
			face = Face(f)
		}
	}

	var uv core.Vec2
	switch face {
	case FaceXNeg:
		uv = core.NewVec2(1-rel.Z, 1-rel.Y)
	case FaceXPos:
		uv = core.NewVec2(rel.Z, 1-rel.Y)
	case FaceYNeg:
		uv = core.NewVec2(rel.X, rel.Z)
	case FaceYPos:
		uv = core.NewVec2(rel.X, 1-rel.Z)
	case FaceZNeg:
		uv = core.NewVec2(1-rel.X, 1-rel.Y)
	case FaceZPos:
		uv = core.NewVec2(rel.X, 1-rel.Y)
	}
	return face, uv
}
