package game

import (
	"fmt"
	"strings"
)

// View is a read-only picture of a board, row by row, for rendering
type View [][]CellState

// View shows revealed cells and hides everything else
func (board *Board) View() View {
	return board.project(board.revealed.Contains)
}

// ExposedView shows every cell as if it were revealed, without touching the
// board's reveal history
func (board *Board) ExposedView() View {
	return board.project(func(Coord) bool { return true })
}

func (board *Board) project(isVisible func(Coord) bool) View {
	view := make(View, board.size)
	for row, cells := range board.cells {
		view[row] = make([]CellState, len(cells))
		for col, cell := range cells {
			if isVisible(Coord{row, col}) {
				view[row][col] = cell.state()
			} else {
				view[row][col] = Unrevealed
			}
		}
	}
	return view
}

func (view View) At(row, col int) CellState {
	return view[row][col]
}

// String lays the view out as a table with row and column indexes:
//
//	   0  1  2
//	-----------
//	0 |1 |  |  |
//	...
func (view View) String() string {
	size := len(view)
	if size == 0 {
		return ""
	}

	widths := make([]int, size)
	for col := range widths {
		widths[col] = len(fmt.Sprint(col))
		for row := range view {
			if w := len(view[row][col].String()); w > widths[col] {
				widths[col] = w
			}
		}
	}

	var rows strings.Builder
	for row, states := range view {
		cells := make([]string, len(states))
		for col, state := range states {
			cells[col] = fmt.Sprintf("%-*s", widths[col], state)
		}
		fmt.Fprintf(&rows, "%d |%s |\n", row, strings.Join(cells, " |"))
	}

	header := make([]string, size)
	for col := range header {
		header[col] = fmt.Sprintf("%-*d", widths[col], col)
	}

	rule := strings.Repeat("-", rows.Len()/size)

	var out strings.Builder
	out.WriteString("   " + strings.Join(header, "  ") + "  \n")
	out.WriteString(rule + "\n")
	out.WriteString(rows.String())
	out.WriteString(rule)
	return out.String()
}
