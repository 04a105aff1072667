package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep/util/collections"
)

var Log = logrus.New()

type Board struct {
	size     int // in number of cells, per side
	numMines int
	cells    [][]Cell

	revealed         collections.Set[Coord]
	numRevealedSafe  int
	hasRevealedMines bool
}

// New places numMines mines uniformly at random on a size x size board
func New(size, numMines int, rnd Source) (*Board, error) {
	if err := validateConfig(size, numMines); err != nil {
		return nil, err
	}

	numCells := size * size
	mines := placeMines(numCells, numMines, rnd)

	mineCoords := make([]Coord, len(mines))
	for i, idx := range mines {
		mineCoords[i] = Coord{idx / size, idx % size}
	}

	return createBoard(size, mineCoords), nil
}

// NewWithMines builds a board with mines at exactly the given coordinates
func NewWithMines(size int, mines []Coord) (*Board, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "size %d must be positive", size)
	}

	distinct := collections.NewSet[Coord]()
	mineCoords := make([]Coord, 0, len(mines))
	for _, coord := range mines {
		if !inBounds(coord, size) {
			return nil, errors.Wrapf(ErrOutOfBounds, "mine at %v on a %dx%d board", coord, size, size)
		}
		if distinct.Add(coord) {
			mineCoords = append(mineCoords, coord)
		}
	}

	if err := validateConfig(size, len(mineCoords)); err != nil {
		return nil, err
	}

	return createBoard(size, mineCoords), nil
}

func validateConfig(size, numMines int) error {
	if size <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "size %d must be positive", size)
	}
	if numMines < 0 || numMines >= size*size {
		return errors.Wrapf(ErrInvalidConfiguration,
			"%d mines do not leave a safe cell on a %dx%d board", numMines, size, size)
	}
	return nil
}

func createBoard(size int, mines []Coord) *Board {
	board := Board{
		size:     size,
		numMines: len(mines),
		cells:    make([][]Cell, size),
		revealed: collections.NewSet[Coord](),
	}

	for row := range board.cells {
		board.cells[row] = make([]Cell, size)
	}
	for _, coord := range mines {
		board.cells[coord.Row][coord.Col] = MineCell()
	}
	board.fillCounts()

	Log.WithFields(logrus.Fields{
		"size":  size,
		"mines": len(mines),
	}).Debug("created board")

	return &board
}

// fillCounts stores the neighbor mine count of every safe cell
func (board *Board) fillCounts() {
	for row, cells := range board.cells {
		for col := range cells {
			if cells[col].IsMine() {
				continue
			}

			numMines := 0
			for _, neighbor := range board.neighbors(Coord{row, col}) {
				if board.cellAt(neighbor).IsMine() {
					numMines++
				}
			}
			cells[col] = SafeCell(numMines)
		}
	}
}

func (board *Board) Size() int {
	return board.size
}

func (board *Board) NumCells() int {
	return board.size * board.size
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumRevealed() int {
	return board.revealed.Len()
}

func (board *Board) CellAt(row, col int) (Cell, bool) {
	coord := Coord{row, col}
	if !inBounds(coord, board.size) {
		return Cell{}, false
	}
	return board.cellAt(coord), true
}

func (board *Board) IsRevealed(row, col int) bool {
	return board.revealed.Contains(Coord{row, col})
}

// Dig uncovers the cell at (row, col). Digging a cell without neighboring
// mines also uncovers its neighbors, transitively.
func (board *Board) Dig(row, col int) (RevealOutcome, error) {
	coord := Coord{row, col}
	if !inBounds(coord, board.size) {
		return Safe, errors.Wrapf(ErrOutOfBounds, "dig at %v on a %dx%d board", coord, board.size, board.size)
	}

	board.reveal(coord)

	cell := board.cellAt(coord)
	switch {
	case cell.IsMine():
		Log.WithField("coord", coord).Debug("dug a mine")
		return HitMine, nil
	case cell.NumMines() > 0:
		return Safe, nil
	}

	before := board.revealed.Len()
	board.cascadeEmpty(coord)

	Log.WithFields(logrus.Fields{
		"coord":    coord,
		"revealed": board.revealed.Len() - before,
	}).Debug("cascaded empty cell")

	return Safe, nil
}

func (board *Board) IsWon() bool {
	return !board.hasRevealedMines && board.numRevealedSafe == board.NumCells()-board.numMines
}

func (board *Board) IsLost() bool {
	return board.hasRevealedMines
}

func (board *Board) State() BoardState {
	switch {
	case board.IsLost():
		return Lost
	case board.IsWon():
		return Won
	default:
		return Ongoing
	}
}

// reveal is the only place the revealed set grows. It returns false if coord
// was already revealed.
func (board *Board) reveal(coord Coord) bool {
	if !board.revealed.Add(coord) {
		return false
	}

	if board.cellAt(coord).IsMine() {
		board.hasRevealedMines = true
	} else {
		board.numRevealedSafe++
	}
	return true
}

func (board *Board) cascadeEmpty(coord Coord) {
	flood(
		coord,
		func(neighbor Coord) bool {
			if !board.reveal(neighbor) {
				return false
			}
			cell := board.cellAt(neighbor)
			return !cell.IsMine() && cell.NumMines() == 0
		},
		board.neighbors,
	)
}

func (board *Board) neighbors(coord Coord) []Coord {
	return Neighbors(coord, board.size)
}

func (board *Board) cellAt(coord Coord) Cell {
	return board.cells[coord.Row][coord.Col]
}

func inBounds(coord Coord, size int) bool {
	return coord.Row >= 0 && coord.Col >= 0 && coord.Row < size && coord.Col < size
}
