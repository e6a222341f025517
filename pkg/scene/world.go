package scene

import "github.com/blox3d/luxtrace/pkg/voxel"

// DefaultWorld builds the demo world: a stone floor under a grass layer
// with a water pool in the middle, a wood wall around the perimeter and a
// small sand pillar.
func DefaultWorld() *voxel.Grid {
	grid := voxel.NewGrid(voxel.DefaultSize)
	size := grid.Size()

	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			grid.SetBlock(voxel.NewCoord(x, 0, z), voxel.Stone)

			if x >= 6 && x <= 8 && z >= 6 && z <= 8 {
				grid.SetBlock(voxel.NewCoord(x, 1, z), voxel.Water)
			} else {
				grid.SetBlock(voxel.NewCoord(x, 1, z), voxel.Grass)
			}

			if x == 0 || x == size-1 || z == 0 || z == size-1 {
				grid.SetBlock(voxel.NewCoord(x, 2, z), voxel.Wood)
			}
		}
	}

	grid.SetBlock(voxel.NewCoord(9, 2, 5), voxel.Sand)
	grid.SetBlock(voxel.NewCoord(9, 3, 5), voxel.Sand)

	return grid
}
