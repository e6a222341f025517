package scene

import (
	"math"
	"testing"

	"github.com/blox3d/luxtrace/pkg/core"
	"github.com/blox3d/luxtrace/pkg/material"
	"github.com/blox3d/luxtrace/pkg/voxel"
)

func TestDefaultWorldLayout(t *testing.T) {
	world := DefaultWorld()
	size := world.Size()

	checks := []struct {
		pos  voxel.Coord
		want voxel.Block
	}{
		{voxel.NewCoord(0, 0, 0), voxel.Stone},
		{voxel.NewCoord(size - 1, 0, size - 1), voxel.Stone},
		{voxel.NewCoord(3, 1, 3), voxel.Grass},
		{voxel.NewCoord(7, 1, 7), voxel.Water},
		{voxel.NewCoord(0, 2, 5), voxel.Wood},
		{voxel.NewCoord(5, 2, 5), voxel.Air},
		{voxel.NewCoord(9, 2, 5), voxel.Sand},
		{voxel.NewCoord(9, 3, 5), voxel.Sand},
		{voxel.NewCoord(7, 10, 7), voxel.Air},
	}

	for _, c := range checks {
		got, ok := world.Block(c.pos)
		if !ok {
			t.Errorf("Expected %v to be inside the world", c.pos)
			continue
		}
		if got != c.want {
			t.Errorf("Block at %v: expected %v, got %v", c.pos, c.want, got)
		}
	}
}

func TestSceneCastRayFindsGround(t *testing.T) {
	s := New(DefaultWorld(), NewSolidAtlas(), DefaultLights())

	// Straight down onto the grass layer
	ray := core.NewRay(core.NewVec3(3.5, 10, 3.5), core.NewVec3(0, -1, 0))
	hit, ok := s.CastRay(ray, math.Inf(1))
	if !ok {
		t.Fatal("Expected to hit the ground")
	}

	wantDistance := 10.0 - 2.0 // Top of the grass layer is y=2
	if math.Abs(hit.Distance-wantDistance) > 1e-6 {
		t.Errorf("Expected distance %f, got %f", wantDistance, hit.Distance)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-9 {
		t.Errorf("Expected +Y normal, got %v", hit.Normal)
	}
}

func TestAtlasMaterials(t *testing.T) {
	atlas := NewSolidAtlas()
	uv := core.NewVec2(0.5, 0.5)

	if _, ok := atlas.Sample(voxel.Water, voxel.FaceYPos, uv).(material.Refractive); !ok {
		t.Error("Water should be refractive")
	}
	if _, ok := atlas.Sample(voxel.Dirt, voxel.FaceYPos, uv).(material.Diffuse); !ok {
		t.Error("Dirt should be diffuse")
	}

	// Stone flips to a mirror when polished
	if _, ok := atlas.Sample(voxel.Stone, voxel.FaceYPos, uv).(material.Diffuse); !ok {
		t.Error("Unpolished stone should be diffuse")
	}
	atlas.StoneReflectivity = 0.4
	if _, ok := atlas.Sample(voxel.Stone, voxel.FaceYPos, uv).(material.Reflective); !ok {
		t.Error("Polished stone should be reflective")
	}

	// Grass samples a different texture per face
	top := atlas.Sample(voxel.Grass, voxel.FaceYPos, uv).(material.Diffuse)
	side := atlas.Sample(voxel.Grass, voxel.FaceXNeg, uv).(material.Diffuse)
	bottom := atlas.Sample(voxel.Grass, voxel.FaceYNeg, uv).(material.Diffuse)
	if top.Albedo == side.Albedo {
		t.Error("Grass top and side should differ")
	}
	if bottom.Albedo != atlas.Dirt.Sample(uv) {
		t.Error("Grass bottom should use the dirt texture")
	}
}
