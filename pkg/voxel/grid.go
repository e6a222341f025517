package voxel

// DefaultSize is the side length of a standard world grid
const DefaultSize = 15

// Coord is an integer voxel coordinate
type Coord struct {
	X, Y, Z int
}

// NewCoord creates a new voxel coordinate
func NewCoord(x, y, z int) Coord {
	return Coord{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of two coordinates
func (c Coord) Add(other Coord) Coord {
	return Coord{c.X + other.X, c.Y + other.Y, c.Z + other.Z}
}

// Axis returns the component selected by index: 0=X, 1=Y, 2=Z
func (c Coord) Axis(i int) int {
	switch i {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// BlockSource answers bounds-checked block lookups over a cubic grid.
// Coordinates outside [0,Size)³ report no data.
type BlockSource interface {
	Size() int
	Block(pos Coord) (Block, bool)
}

// Grid is a cube of side Size with integer-addressed cells. Blocks are
// stored linearized as x + y*size + z*size². A Grid may be mutated between
// renders but must be treated as read-only while one is running.
type Grid struct {
	size   int
	blocks []Block
}

// NewGrid creates an all-air grid of the given side length
func NewGrid(size int) *Grid {
	if size <= 0 {
		size = DefaultSize
	}
	return &Grid{
		size:   size,
		blocks: make([]Block, size*size*size),
	}
}

// Size returns the grid's side length
func (g *Grid) Size() int {
	return g.size
}

// Block returns the block at pos, or false if pos is outside the grid
func (g *Grid) Block(pos Coord) (Block, bool) {
	i, ok := g.linearize(pos)
	if !ok {
		return Air, false
	}
	return g.blocks[i], true
}

// SetBlock stores a block at pos. Out-of-bounds positions are ignored.
func (g *Grid) SetBlock(pos Coord, block Block) {
	if i, ok := g.linearize(pos); ok {
		g.blocks[i] = block
	}
}

// Fill sets every block in the inclusive coordinate range [from, to]
func (g *Grid) Fill(from, to Coord, block Block) {
	for z := from.Z; z <= to.Z; z++ {
		for y := from.Y; y <= to.Y; y++ {
			for x := from.X; x <= to.X; x++ {
				g.SetBlock(NewCoord(x, y, z), block)
			}
		}
	}
}

func (g *Grid) linearize(pos Coord) (int, bool) {
	if pos.X < 0 || pos.X >= g.size ||
		pos.Y < 0 || pos.Y >= g.size ||
		pos.Z < 0 || pos.Z >= g.size {
		return 0, false
	}
	return pos.X + pos.Y*g.size + pos.Z*g.size*g.size, true
}
