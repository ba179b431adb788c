package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const borderPadding = 10 // Padding around game area

var (
	bodyColor = rl.Color{R: 0, G: 180, B: 90, A: 255}
	headColor = rl.Color{R: 0, G: 234, B: 117, A: 255}
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	statsPanel      int32
	gameWidth       int32
	gameHeight      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a slice of the window, the grid gets the rest
	r.statsPanel = r.screenWidth / 4
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame from a state snapshot. The renderer never touches
// the engine's live state.
func (r *Renderer) Draw(snap game.Snapshot, highScore, gamesPlayed int) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/40, r.statsPanel/12)
	lineHeight := fontSize + fontSize/2

	// Fit square cells into the available game area
	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)
	cellW := availableWidth / int32(types.GridSize)
	cellH := availableHeight / int32(types.GridSize)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(types.GridSize)
	r.totalGridHeight = r.cellSize * int32(types.GridSize)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	// Grid background and lines
	rl.DrawRectangle(
		r.offsetX-1,
		r.offsetY-1,
		r.totalGridWidth+2,
		r.totalGridHeight+2,
		rl.DarkGray)
	for x := 0; x < types.GridSize; x++ {
		for y := 0; y < types.GridSize; y++ {
			rl.DrawRectangleLines(
				r.offsetX+int32(x)*r.cellSize,
				r.offsetY+int32(y)*r.cellSize,
				r.cellSize, r.cellSize, rl.Gray)
		}
	}

	r.drawSnake(snap)

	// Food
	rl.DrawRectangle(
		r.offsetX+int32(snap.Food.X)*r.cellSize,
		r.offsetY+int32(snap.Food.Y)*r.cellSize,
		r.cellSize, r.cellSize, rl.Red)

	r.drawStatsPanel(snap, highScore, gamesPlayed, fontSize, lineHeight)
	r.drawOverlay(snap, fontSize)

	rl.EndDrawing()
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	for i, p := range snap.Body {
		color := bodyColor
		if i == len(snap.Body)-1 && len(snap.Body) > 1 { // Tail
			color = rl.White
		}
		if i == 0 { // Head
			color = headColor
		}
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize,
			r.offsetY+int32(p.Y)*r.cellSize,
			r.cellSize, r.cellSize, color)

		if i == 0 {
			r.drawHeading(p, snap.Direction)
		}
	}
}

// drawHeading marks the head with a triangle pointing the way the snake moves.
func (r *Renderer) drawHeading(head, direction types.Cell) {
	headX := r.offsetX + int32(head.X)*r.cellSize
	headY := r.offsetY + int32(head.Y)*r.cellSize
	halfCell := r.cellSize / 2

	if direction.X > 0 { // Right
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	} else if direction.X < 0 { // Left
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	} else if direction.Y > 0 { // Down
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	} else { // Up
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, highScore, gamesPlayed int, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("High Score: %d", highScore), statsX, statsY, fontSize, rl.Gold)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Length: %d", len(snap.Body)), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Games: %d", gamesPlayed), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight * 2

	rl.DrawText("Controls:", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText("Arrows / WASD - steer", statsX+5, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	pauseColor := rl.LightGray
	if snap.GameOver {
		pauseColor = rl.Gray // pause is dead once the game is over
	}
	rl.DrawText("Space / P - pause", statsX+5, statsY, fontSize, pauseColor)
	statsY += lineHeight
	rl.DrawText("R - restart", statsX+5, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText("Q - quit", statsX+5, statsY, fontSize, rl.LightGray)
}

func (r *Renderer) drawOverlay(snap game.Snapshot, fontSize int32) {
	overlaySize := fontSize * 2
	var text string
	var color rl.Color

	switch {
	case snap.Won:
		text = "YOU WIN! Press R to play again"
		color = rl.Gold
	case snap.GameOver:
		text = "GAME OVER - Press R to restart"
		color = rl.Red
	case snap.Paused:
		text = "PAUSED"
		color = rl.Yellow
	default:
		return
	}

	textWidth := rl.MeasureText(text, overlaySize)
	rl.DrawText(text,
		r.offsetX+(r.totalGridWidth-textWidth)/2,
		r.offsetY+r.totalGridHeight/2,
		overlaySize, color)
}
