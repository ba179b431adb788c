package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager places food on cells not occupied by the snake.
type FoodManager struct {
	rng *rand.Rand
}

func NewFoodManager(seed uint64) *FoodManager {
	return &FoodManager{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Place draws a cell uniformly at random and resamples until it misses the
// snake. The second return is false when the snake covers the whole grid and
// no cell is free; the caller treats that as the win condition.
func (fm *FoodManager) Place(snake *entity.Snake) (types.Cell, bool) {
	if snake.Len() >= types.GridSize*types.GridSize {
		return types.Cell{}, false
	}

	for {
		food := types.Cell{
			X: fm.rng.Intn(types.GridSize),
			Y: fm.rng.Intn(types.GridSize),
		}
		if !snake.Contains(food) {
			return food, true
		}
	}
}
