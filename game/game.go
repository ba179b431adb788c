package game

import (
	"sync"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// Snapshot is an immutable view of the game state, safe to hand to the
// renderer while the engine keeps mutating its own copy.
type Snapshot struct {
	Body          []types.Cell
	Food          types.Cell
	Direction     types.Cell
	NextDirection types.Cell
	Score         int
	Paused        bool
	GameOver      bool
	Won           bool
}

// Game owns the authoritative state of one snake game. All mutation goes
// through Tick, SubmitDirection, TogglePause and Reset, serialized by the
// mutex so the engine stays correct even under a multi-threaded driver.
type Game struct {
	mu sync.RWMutex

	snake     *entity.Snake
	food      types.Cell
	direction types.Cell
	input     *manager.InputManager
	foodMgr   *manager.FoodManager
	score     int
	paused    bool
	gameOver  bool
	won       bool
}

// NewGame creates a game in the canonical start configuration. The seed
// drives food placement only.
func NewGame(seed uint64) *Game {
	g := &Game{
		foodMgr: manager.NewFoodManager(seed),
	}
	g.start()
	return g
}

func (g *Game) start() {
	g.snake = entity.NewSnake(types.StartHead)
	g.food = types.StartFood
	g.direction = types.StartDirection
	g.input = manager.NewInputManager(types.StartDirection)
	g.score = 0
	g.paused = false
	g.gameOver = false
	g.won = false
}

// Tick advances the game by one step. highScore is the persisted record the
// caller owns; the returned bool is true when the game just ended with a
// score beating it, which is the caller's cue to persist a new record.
// Ticks while paused or after game over do nothing.
func (g *Game) Tick(highScore int) (Snapshot, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.paused || g.gameOver {
		return g.snapshot(), false
	}

	g.direction = g.input.Commit()
	newHead := g.snake.Head().Add(g.direction)

	// The collision check runs before the head is committed, so on game over
	// the snake the player sees is exactly the pre-collision one.
	if g.snake.Contains(newHead) {
		g.gameOver = true
		return g.snapshot(), g.score > highScore
	}

	if newHead == g.food {
		g.snake.Grow(newHead)
		g.score += types.FoodReward
		food, ok := g.foodMgr.Place(g.snake)
		if !ok {
			// Snake covers the whole grid: nothing left to eat.
			g.gameOver = true
			g.won = true
			return g.snapshot(), g.score > highScore
		}
		g.food = food
	} else {
		g.snake.Advance(newHead)
	}

	return g.snapshot(), false
}

// SubmitDirection buffers a direction intent for the next tick. Same-axis
// candidates are rejected against the committed direction; with several
// intents in one tick window the last accepted one wins.
func (g *Game) SubmitDirection(candidate types.Cell) Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.input.Submit(g.direction, candidate)
	return g.snapshot()
}

// TogglePause flips the pause flag. A finished game ignores it.
func (g *Game) TogglePause() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.gameOver {
		g.paused = !g.paused
	}
	return g.snapshot()
}

// Reset replaces the state with the canonical start configuration. The high
// score lives with the caller and is untouched.
func (g *Game) Reset() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.start()
	return g.snapshot()
}

// Snapshot returns the current read-only view.
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	return Snapshot{
		Body:          g.snake.CopyBody(),
		Food:          g.food,
		Direction:     g.direction,
		NextDirection: g.input.Next(),
		Score:         g.score,
		Paused:        g.paused,
		GameOver:      g.gameOver,
		Won:           g.won,
	}
}
