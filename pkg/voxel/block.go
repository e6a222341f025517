package voxel

// Block identifies the contents of a single grid cell
type Block uint8

// Block kinds
const (
	Air Block = iota
	Dirt
	Stone
	Sand
	Grass
	Wood
	Leaves
	Water
)

var blockNames = map[Block]string{
	Air:    "air",
	Dirt:   "dirt",
	Stone:  "stone",
	Sand:   "sand",
	Grass:  "grass",
	Wood:   "wood",
	Leaves: "leaves",
	Water:  "water",
}

// String returns the block's name
func (b Block) String() string {
	if name, ok := blockNames[b]; ok {
		return name
	}
	return "unknown"
}

// IsSolid reports whether the block is fully opaque. Leaves and water are
// visible but not solid.
func (b Block) IsSolid() bool {
	switch b {
	case Dirt, Stone, Sand, Grass, Wood:
		return true
	default:
		return false
	}
}
