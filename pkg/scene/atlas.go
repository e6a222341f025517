package scene

import (
	"github.com/blox3d/luxtrace/pkg/core"
	"github.com/blox3d/luxtrace/pkg/material"
	"github.com/blox3d/luxtrace/pkg/voxel"
)

// BlockAtlas maps (block, face, uv) to a concrete material. Grass uses a
// different texture per face; water resolves to a refractive material and
// stone can optionally be polished into a mirror.
type BlockAtlas struct {
	Dirt      *material.Texture
	Stone     *material.Texture
	Sand      *material.Texture
	GrassSide *material.Texture
	GrassTop  *material.Texture
	Wood      *material.Texture
	Leaves    *material.Texture
	Water     *material.Texture

	WaterIndex        float64 // Refractive index of water blocks
	WaterTransparency float64 // [0,1]
	StoneReflectivity float64 // 0 leaves stone diffuse
}

// NewSolidAtlas creates an atlas of flat fallback colors so rendering works
// without texture assets on disk
func NewSolidAtlas() *BlockAtlas {
	return &BlockAtlas{
		Dirt:      material.NewSolidTexture(core.NewColor(0.35, 0.22, 0.12)),
		Stone:     material.NewSolidTexture(core.NewColor(0.45, 0.45, 0.47)),
		Sand:      material.NewSolidTexture(core.NewColor(0.85, 0.78, 0.55)),
		GrassSide: material.NewSolidTexture(core.NewColor(0.30, 0.42, 0.16)),
		GrassTop:  material.NewSolidTexture(core.NewColor(0.25, 0.55, 0.18)),
		Wood:      material.NewSolidTexture(core.NewColor(0.42, 0.30, 0.17)),
		Leaves:    material.NewSolidTexture(core.NewColor(0.18, 0.40, 0.12)),
		Water:     material.NewSolidTexture(core.NewColor(0.15, 0.30, 0.55)),

		WaterIndex:        1.33,
		WaterTransparency: 0.85,
	}
}

// Sample implements voxel.MaterialSampler
func (a *BlockAtlas) Sample(block voxel.Block, face voxel.Face, uv core.Vec2) material.Material {
	switch block {
	case voxel.Water:
		return material.NewRefractive(a.Water.Sample(uv), a.WaterIndex, a.WaterTransparency)

	case voxel.Stone:
		albedo := a.Stone.Sample(uv)
		if a.StoneReflectivity > 0 {
			return material.NewReflective(albedo, a.StoneReflectivity)
		}
		return material.NewDiffuse(albedo)

	case voxel.Grass:
		switch face {
		case voxel.FaceYPos:
			return material.NewDiffuse(a.GrassTop.Sample(uv))
		case voxel.FaceYNeg:
			return material.NewDiffuse(a.Dirt.Sample(uv))
		default:
			return material.NewDiffuse(a.GrassSide.Sample(uv))
		}

	case voxel.Dirt:
		return material.NewDiffuse(a.Dirt.Sample(uv))
	case voxel.Sand:
		return material.NewDiffuse(a.Sand.Sample(uv))
	case voxel.Wood:
		return material.NewDiffuse(a.Wood.Sample(uv))
	case voxel.Leaves:
		return material.NewDiffuse(a.Leaves.Sample(uv))
	default:
		return material.NewDiffuse(core.Black)
	}
}
