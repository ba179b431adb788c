package types

// GridSize is the number of cells per side. The grid is toroidal: moving off
// one edge re-enters on the opposite edge.
const GridSize = 20

// FoodReward is the score gained per food eaten.
const FoodReward = 10

// Cell is a grid position. It doubles as a direction vector, in which case
// exactly one component is ±1 and the other is 0.
type Cell struct {
	X, Y int
}

// Direction vectors.
var (
	Up    = Cell{X: 0, Y: -1}
	Down  = Cell{X: 0, Y: 1}
	Left  = Cell{X: -1, Y: 0}
	Right = Cell{X: 1, Y: 0}
)

// Canonical start configuration.
var (
	StartHead      = Cell{X: 10, Y: 10}
	StartFood      = Cell{X: 15, Y: 15}
	StartDirection = Right
)

// Add returns the cell one step from c in direction d, wrapped onto the grid.
func (c Cell) Add(d Cell) Cell {
	return Cell{
		X: wrap(c.X + d.X),
		Y: wrap(c.Y + d.Y),
	}
}

func wrap(v int) int {
	v %= GridSize
	if v < 0 {
		v += GridSize
	}
	return v
}
