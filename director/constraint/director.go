package constraint

import (
	"fmt"
	"math"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/util/collections"
)

// Director deduces safe cells from the numbers on the board, and only
// guesses when nothing can be deduced. It reads the board through its View,
// never through hidden cells.
type Director struct {
	board *game.Board
	guess *random.Director

	knownMines collections.Set[game.Coord]
	safeCells  *deque.Deque[game.Coord]
}

// Observation is what a revealed number says about its hidden neighbors:
// exactly numMines of cells are mines
type Observation struct {
	origin   game.Coord
	numMines int
	cells    []game.Coord
}

func (observation Observation) String() string {
	return fmt.Sprintf("Obs[%v, %d ε %v]", observation.origin, observation.numMines, observation.cells)
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func New(seed int64) *Director {
	return &Director{guess: random.New(seed)}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.guess.Init(board)
	director.knownMines = collections.NewSet[game.Coord]()
	director.safeCells = deque.New[game.Coord]()
}

func (director *Director) Next() (game.Coord, bool) {
	if director.board == nil {
		return game.Coord{}, false
	}

	if coord, ok := director.nextSafe(); ok {
		return coord, true
	}

	observations := director.deduce()
	if coord, ok := director.nextSafe(); ok {
		return coord, true
	}

	if coord, ok := director.lowestProbability(observations); ok {
		return coord, true
	}

	for {
		coord, ok := director.guess.Next()
		if !ok || !director.knownMines.Contains(coord) {
			return coord, ok
		}
	}
}

func (director *Director) nextSafe() (game.Coord, bool) {
	for director.safeCells.Len() > 0 {
		coord := director.safeCells.PopFront()
		if !director.board.IsRevealed(coord.Row, coord.Col) {
			return coord, true
		}
	}
	return game.Coord{}, false
}

// deduce repeatedly marks mines and queues safe cells until no observation
// yields anything new, then returns the observations left undecided
func (director *Director) deduce() []Observation {
	for {
		observations := director.observe()
		changed := false
		var undecided []Observation

		for _, observation := range observations {
			switch observation.numMines {
			case len(observation.cells):
				for _, cell := range observation.cells {
					changed = director.knownMines.Add(cell) || changed
				}
			case 0:
				for _, cell := range observation.cells {
					director.safeCells.PushBack(cell)
				}
			default:
				undecided = append(undecided, observation)
			}
		}

		if director.safeCells.Len() > 0 || !changed {
			game.Log.WithFields(logrus.Fields{
				"knownMines": director.knownMines.Len(),
				"safe":       director.safeCells.Len(),
				"undecided":  len(undecided),
			}).Debug("constraint director deduced")
			return undecided
		}
	}
}

// observe builds one observation per revealed number that still borders
// hidden cells not known to be mines
func (director *Director) observe() []Observation {
	view := director.board.View()
	size := director.board.Size()

	var observations []Observation
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			state := view.At(row, col)
			if state < game.Number1 || state > game.Number8 {
				continue
			}

			observation := Observation{
				origin:   game.Coord{Row: row, Col: col},
				numMines: int(state),
			}
			for _, neighbor := range game.Neighbors(observation.origin, size) {
				switch {
				case director.knownMines.Contains(neighbor):
					observation.numMines--
				case view.At(neighbor.Row, neighbor.Col) == game.Unrevealed:
					observation.cells = append(observation.cells, neighbor)
				}
			}

			if len(observation.cells) > 0 {
				observations = append(observations, observation)
			}
		}
	}
	return observations
}

func (director *Director) lowestProbability(observations []Observation) (game.Coord, bool) {
	lowestProbability := math.Inf(1)
	var lowestCell game.Coord

	for _, observation := range observations {
		if probability := observation.MineProbability(); probability < lowestProbability {
			lowestProbability = probability
			lowestCell = observation.cells[0]
		}
	}

	return lowestCell, !math.IsInf(lowestProbability, 1)
}
