package game

import (
	"reflect"
	"testing"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// setState installs an arbitrary position for scenario tests.
func setState(g *Game, body []types.Cell, dir, food types.Cell) {
	g.snake = &entity.Snake{Body: body}
	g.direction = dir
	g.input = manager.NewInputManager(dir)
	g.food = food
}

func TestTickMovesWithoutGrowth(t *testing.T) {
	g := NewGame(1)
	setState(g, []types.Cell{{X: 10, Y: 10}}, types.Right, types.Cell{X: 15, Y: 15})

	snap, newHigh := g.Tick(0)

	want := []types.Cell{{X: 11, Y: 10}}
	if !reflect.DeepEqual(snap.Body, want) {
		t.Errorf("body = %v, want %v", snap.Body, want)
	}
	if snap.Food != (types.Cell{X: 15, Y: 15}) {
		t.Errorf("food moved to %v on a plain move", snap.Food)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, want 0", snap.Score)
	}
	if snap.GameOver || newHigh {
		t.Errorf("unexpected terminal state: gameOver=%v newHigh=%v", snap.GameOver, newHigh)
	}
}

func TestTickEatsFoodAndGrows(t *testing.T) {
	g := NewGame(1)
	setState(g, []types.Cell{{X: 14, Y: 15}, {X: 13, Y: 15}}, types.Right, types.Cell{X: 15, Y: 15})

	snap, _ := g.Tick(0)

	want := []types.Cell{{X: 15, Y: 15}, {X: 14, Y: 15}, {X: 13, Y: 15}}
	if !reflect.DeepEqual(snap.Body, want) {
		t.Errorf("body = %v, want %v", snap.Body, want)
	}
	if snap.Score != types.FoodReward {
		t.Errorf("score = %d, want %d", snap.Score, types.FoodReward)
	}
	if snap.Food == (types.Cell{X: 15, Y: 15}) {
		t.Error("food was not re-placed after being eaten")
	}
	for _, c := range snap.Body {
		if snap.Food == c {
			t.Errorf("new food %v placed on the snake", snap.Food)
		}
	}
}

func TestTickSelfCollisionEndsGame(t *testing.T) {
	g := NewGame(1)
	// Head at (5,5) moving right into (6,5), which the body occupies.
	body := []types.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	setState(g, body, types.Right, types.Cell{X: 0, Y: 0})

	snap, _ := g.Tick(0)

	if !snap.GameOver {
		t.Fatal("self-collision did not end the game")
	}
	if snap.Won {
		t.Error("self-collision flagged as a win")
	}
	if !reflect.DeepEqual(snap.Body, body) {
		t.Errorf("snake mutated on the fatal tick: %v, want pre-collision %v", snap.Body, body)
	}
	if snap.Score != 0 {
		t.Errorf("score changed on the fatal tick: %d", snap.Score)
	}

	// Terminal for movement: further ticks change nothing.
	again, newHigh := g.Tick(0)
	if !reflect.DeepEqual(again, snap) {
		t.Error("tick after game over mutated state")
	}
	if newHigh {
		t.Error("tick after game over re-signaled a high score")
	}
}

func TestTickWhilePausedIsNoOp(t *testing.T) {
	g := NewGame(1)
	before := g.TogglePause()
	if !before.Paused {
		t.Fatal("TogglePause did not pause a running game")
	}

	for i := 0; i < 5; i++ {
		snap, newHigh := g.Tick(0)
		if newHigh {
			t.Fatal("paused tick signaled a high score")
		}
		if !reflect.DeepEqual(snap, before) {
			t.Fatalf("paused tick %d changed state: %+v != %+v", i, snap, before)
		}
	}

	resumed := g.TogglePause()
	if resumed.Paused {
		t.Error("second toggle did not resume")
	}
}

func TestDirectionIntents(t *testing.T) {
	g := NewGame(1) // moving right

	snap := g.SubmitDirection(types.Left)
	if snap.NextDirection != types.Right {
		t.Errorf("reversal accepted: next = %v, want %v", snap.NextDirection, types.Right)
	}

	snap = g.SubmitDirection(types.Down)
	if snap.NextDirection != types.Down {
		t.Errorf("perpendicular turn rejected: next = %v, want %v", snap.NextDirection, types.Down)
	}

	// The buffered turn becomes effective on the next tick.
	ticked, _ := g.Tick(0)
	if ticked.Direction != types.Down {
		t.Errorf("direction after tick = %v, want %v", ticked.Direction, types.Down)
	}
	if ticked.Body[0] != (types.Cell{X: 10, Y: 11}) {
		t.Errorf("head = %v, want {10 11}", ticked.Body[0])
	}
}

func TestHighScoreSignal(t *testing.T) {
	g := NewGame(1)
	body := []types.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	setState(g, body, types.Right, types.Cell{X: 0, Y: 0})
	g.score = 50

	if _, newHigh := g.Tick(60); newHigh {
		t.Error("signaled a high score without beating the record")
	}

	g = NewGame(1)
	setState(g, body, types.Right, types.Cell{X: 0, Y: 0})
	g.score = 50

	if _, newHigh := g.Tick(40); !newHigh {
		t.Error("no signal although the final score beat the record")
	}
}

func TestTogglePauseIgnoredAfterGameOver(t *testing.T) {
	g := NewGame(1)
	setState(g, []types.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}, types.Right, types.Cell{X: 0, Y: 0})
	g.Tick(0)

	snap := g.TogglePause()
	if snap.Paused {
		t.Error("pause toggled on a finished game")
	}
}

func TestResetRestoresCanonicalStart(t *testing.T) {
	g := NewGame(1)
	g.SubmitDirection(types.Down)
	for i := 0; i < 10; i++ {
		g.Tick(0)
	}

	snap := g.Reset()

	if !reflect.DeepEqual(snap.Body, []types.Cell{types.StartHead}) {
		t.Errorf("body = %v, want [%v]", snap.Body, types.StartHead)
	}
	if snap.Food != types.StartFood {
		t.Errorf("food = %v, want %v", snap.Food, types.StartFood)
	}
	if snap.Direction != types.StartDirection || snap.NextDirection != types.StartDirection {
		t.Errorf("direction = %v/%v, want %v", snap.Direction, snap.NextDirection, types.StartDirection)
	}
	if snap.Score != 0 || snap.Paused || snap.GameOver || snap.Won {
		t.Errorf("flags not reset: %+v", snap)
	}
}

func TestWinWhenSnakeFillsGrid(t *testing.T) {
	g := NewGame(1)

	// Every cell but (0,0) occupied, head at (0,1) about to eat the last
	// free cell.
	body := []types.Cell{{X: 0, Y: 1}}
	for x := 0; x < types.GridSize; x++ {
		for y := 0; y < types.GridSize; y++ {
			c := types.Cell{X: x, Y: y}
			if c == (types.Cell{X: 0, Y: 0}) || c == (types.Cell{X: 0, Y: 1}) {
				continue
			}
			body = append(body, c)
		}
	}
	setState(g, body, types.Up, types.Cell{X: 0, Y: 0})
	g.score = 3980

	snap, newHigh := g.Tick(100)

	if !snap.GameOver || !snap.Won {
		t.Fatalf("full grid not terminal: gameOver=%v won=%v", snap.GameOver, snap.Won)
	}
	if len(snap.Body) != types.GridSize*types.GridSize {
		t.Errorf("final length = %d, want %d", len(snap.Body), types.GridSize*types.GridSize)
	}
	if snap.Score != 3980+types.FoodReward {
		t.Errorf("final score = %d, want %d", snap.Score, 3980+types.FoodReward)
	}
	if !newHigh {
		t.Error("winning score beat the record but no signal")
	}
}

// Random play must preserve the length, score, overlap and bounds invariants
// on every tick.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	g := NewGame(99)
	rng := rand.New(rand.NewSource(123))
	perpendicular := map[types.Cell][2]types.Cell{
		types.Right: {types.Up, types.Down},
		types.Left:  {types.Up, types.Down},
		types.Up:    {types.Left, types.Right},
		types.Down:  {types.Left, types.Right},
	}

	prev := g.Snapshot()
	for i := 0; i < 2000; i++ {
		if rng.Intn(3) == 0 {
			turns := perpendicular[prev.Direction]
			g.SubmitDirection(turns[rng.Intn(2)])
		}

		snap, _ := g.Tick(0)
		if snap.GameOver {
			break
		}

		if len(snap.Body) < len(prev.Body) {
			t.Fatalf("tick %d: length shrank %d -> %d", i, len(prev.Body), len(snap.Body))
		}
		grew := len(snap.Body) - len(prev.Body)
		gained := snap.Score - prev.Score
		if grew == 1 && gained != types.FoodReward {
			t.Fatalf("tick %d: grew without scoring %d (got %d)", i, types.FoodReward, gained)
		}
		if grew == 0 && gained != 0 {
			t.Fatalf("tick %d: scored %d without growing", i, gained)
		}
		if grew > 1 {
			t.Fatalf("tick %d: grew by %d in one tick", i, grew)
		}

		seen := make(map[types.Cell]bool, len(snap.Body))
		for _, c := range snap.Body {
			if c.X < 0 || c.X >= types.GridSize || c.Y < 0 || c.Y >= types.GridSize {
				t.Fatalf("tick %d: cell %v off grid", i, c)
			}
			if seen[c] {
				t.Fatalf("tick %d: snake overlaps itself at %v while alive", i, c)
			}
			seen[c] = true
		}
		if seen[snap.Food] {
			t.Fatalf("tick %d: food %v on the snake", i, snap.Food)
		}

		prev = snap
	}
}
