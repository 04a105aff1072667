package game

import "fmt"

type Coord struct {
	Row, Col int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Col)
}

// Cell holds either a mine or the number of mines among its neighbors. It is
// decided once at construction and never changes.
type Cell struct {
	isMine   bool
	numMines uint8
}

func MineCell() Cell {
	return Cell{isMine: true}
}

func SafeCell(numMines int) Cell {
	return Cell{numMines: uint8(numMines)}
}

func (cell Cell) IsMine() bool {
	return cell.isMine
}

// NumMines is the neighbor mine count; always zero for a mine
func (cell Cell) NumMines() int {
	return int(cell.numMines)
}

func (cell Cell) String() string {
	if cell.isMine {
		return "Mine"
	}
	return fmt.Sprintf("SafeCount(%d)", cell.numMines)
}

func (cell Cell) state() CellState {
	if cell.isMine {
		return Mine
	}
	return CellState(cell.numMines)
}

var neighborOffsets = [maxNeighbors]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the Moore neighborhood of coord, clipped to a square grid
// of the given size
func Neighbors(coord Coord, size int) []Coord {
	neighbors := make([]Coord, 0, maxNeighbors)
	for _, offset := range neighborOffsets {
		row, col := coord.Row+offset.Row, coord.Col+offset.Col
		if row >= 0 && col >= 0 && row < size && col < size {
			neighbors = append(neighbors, Coord{row, col})
		}
	}
	return neighbors
}
