package entity

import (
	"snake-classic/game/types"
)

// Snake is the ordered body of the player snake. The head is Body[0], the
// tail is the last element. While the game is alive all cells are distinct.
type Snake struct {
	Body []types.Cell
}

func NewSnake(start types.Cell) *Snake {
	return &Snake{
		Body: []types.Cell{start},
	}
}

func (s *Snake) Head() types.Cell {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether cell is occupied by any body segment.
func (s *Snake) Contains(cell types.Cell) bool {
	for _, c := range s.Body {
		if c == cell {
			return true
		}
	}
	return false
}

// Grow prepends a new head, extending the snake by one cell.
func (s *Snake) Grow(head types.Cell) {
	s.Body = append([]types.Cell{head}, s.Body...)
}

// Advance prepends a new head and drops the tail, keeping the length constant.
func (s *Snake) Advance(head types.Cell) {
	s.Grow(head)
	s.Body = s.Body[:len(s.Body)-1]
}

// CopyBody returns an independent copy of the body for read-only consumers.
func (s *Snake) CopyBody() []types.Cell {
	body := make([]types.Cell, len(s.Body))
	copy(body, s.Body)
	return body
}
