package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	snapshotMine = '*'
	snapshotSafe = '.'
)

// BoardSnapshot records a mine layout, so a board can be replayed from
// scratch. Reveal progress is not part of it.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (board *Board) Snapshot(seed int64) *BoardSnapshot {
	rows := make([]string, board.size)
	for row, cells := range board.cells {
		var b strings.Builder
		for _, cell := range cells {
			if cell.IsMine() {
				b.WriteRune(snapshotMine)
			} else {
				b.WriteRune(snapshotSafe)
			}
		}
		rows[row] = b.String()
	}

	return &BoardSnapshot{
		Seed:            seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func (snapshot *BoardSnapshot) CreateBoard() (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	size := len(rows)

	var mines []Coord
	for row, line := range rows {
		line = strings.TrimSpace(line)
		if len(line) != size {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "row %d has %d cells, want %d", row, len(line), size)
		}

		for col, c := range line {
			switch c {
			case snapshotMine:
				mines = append(mines, Coord{row, col})
			case snapshotSafe:
			default:
				return nil, errors.Wrapf(ErrInvalidSnapshot, "unknown cell %q at %v", c, Coord{row, col})
			}
		}
	}

	return NewWithMines(size, mines)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(ErrInvalidSnapshot, err.Error())
	}
	if strings.TrimSpace(snapshot.SerializedBoard) == "" {
		return nil, errors.Wrap(ErrInvalidSnapshot, "empty board")
	}
	return &snapshot, nil
}
