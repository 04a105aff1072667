package random

import (
	"math/rand"

	"github.com/gammazero/deque"
	"github.com/they4kman/gosweep/game"
)

// Director digs unrevealed cells in a random order
type Director struct {
	rand  *rand.Rand
	board *game.Board

	unrevealedCells *deque.Deque[game.Coord]
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Init(board *game.Board) {
	director.board = board

	size := board.Size()
	cells := make([]game.Coord, 0, board.NumCells())
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cells = append(cells, game.Coord{Row: row, Col: col})
		}
	}

	director.rand.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	director.unrevealedCells = deque.New[game.Coord](len(cells))
	for _, cell := range cells {
		director.unrevealedCells.PushBack(cell)
	}
}

func (director *Director) Next() (game.Coord, bool) {
	if director.board == nil {
		return game.Coord{}, false
	}

	for director.unrevealedCells.Len() > 0 {
		cell := director.unrevealedCells.PopFront()
		if !director.board.IsRevealed(cell.Row, cell.Col) {
			return cell, true
		}
	}
	return game.Coord{}, false
}
