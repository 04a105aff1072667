package game

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	promptDig      = "Where would you like to dig? Input as row, col: "
	msgInvalid     = "Invalid location. Try again."
	msgVictory     = "CONGRATULATIONS!!!! YOU ARE VICTORIOUS!"
	msgGameOver    = "SORRY GAME OVER :("
	defaultSize    = 10
	defaultNumMine = 10
)

type GameConfig struct {
	Size     int   `yaml:"size"`
	NumMines int   `yaml:"mines"`
	Seed     int64 `yaml:"seed"`

	// Snapshot to load the mine layout from, instead of placing mines randomly
	Snapshot *BoardSnapshot `yaml:"-"`

	Director Director `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Size:     defaultSize,
		NumMines: defaultNumMine,
	}
}

// LoadGameConfig reads a yaml config file over the defaults
func LoadGameConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	in, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	return config, nil
}

func (config GameConfig) createBoard() (*Board, error) {
	if config.Snapshot != nil {
		return config.Snapshot.CreateBoard()
	}
	return New(config.Size, config.NumMines, rand.New(rand.NewSource(config.Seed)))
}

var coordPattern = regexp.MustCompile(`^\s*(-?\d+)\s*,\s*(-?\d+)\s*$`)

// ParseCoord reads a "row, col" pair
func ParseCoord(line string) (Coord, error) {
	match := coordPattern.FindStringSubmatch(line)
	if match == nil {
		return Coord{}, errors.Wrapf(ErrBadInput, "%q", line)
	}

	row, err := strconv.Atoi(match[1])
	if err != nil {
		return Coord{}, errors.Wrapf(ErrBadInput, "row %q", match[1])
	}
	col, err := strconv.Atoi(match[2])
	if err != nil {
		return Coord{}, errors.Wrapf(ErrBadInput, "col %q", match[2])
	}
	return Coord{row, col}, nil
}

// Run plays one game, prompting on out and reading moves from in (or from
// the configured Director), until the game is won or lost
func Run(config GameConfig, in io.Reader, out io.Writer) (BoardState, error) {
	board, err := config.createBoard()
	if err != nil {
		return Ongoing, err
	}

	if config.Director != nil {
		config.Director.Init(board)
	}

	scanner := bufio.NewScanner(in)
	for board.State() == Ongoing {
		fmt.Fprintln(out, board.View())

		coord, err := config.nextMove(scanner, out)
		if errors.Is(err, ErrBadInput) {
			fmt.Fprintln(out, msgInvalid)
			continue
		} else if err != nil {
			return board.State(), err
		}

		if _, err := board.Dig(coord.Row, coord.Col); errors.Is(err, ErrOutOfBounds) {
			fmt.Fprintln(out, msgInvalid)
			continue
		} else if err != nil {
			return board.State(), err
		}
	}

	state := board.State()
	Log.WithFields(logrus.Fields{
		"state":    state,
		"revealed": board.NumRevealed(),
		"layout":   board.Snapshot(config.Seed).SerializedBoard,
	}).Debug("game over")

	if state == Won {
		fmt.Fprintln(out, msgVictory)
	} else {
		fmt.Fprintln(out, msgGameOver)
		fmt.Fprintln(out, board.ExposedView())
	}

	return state, nil
}

func (config GameConfig) nextMove(scanner *bufio.Scanner, out io.Writer) (Coord, error) {
	fmt.Fprint(out, promptDig)

	if config.Director != nil {
		coord, ok := config.Director.Next()
		if !ok {
			return Coord{}, errors.Wrap(ErrInputClosed, "director has no moves left")
		}
		fmt.Fprintf(out, "%d, %d\n", coord.Row, coord.Col)
		return coord, nil
	}

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return Coord{}, errors.Wrap(err, "reading move")
		}
		return Coord{}, ErrInputClosed
	}
	return ParseCoord(scanner.Text())
}
