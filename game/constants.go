package game

type CellState int
type BoardState int
type RevealOutcome int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Mine
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Mine,
}

func (state CellState) String() string {
	switch {
	case state == Unrevealed:
		return " "
	case state == Mine:
		return "*"
	case state >= Empty && state <= Number8:
		return string(rune('0' + int(state)))
	default:
		return "?"
	}
}

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "ongoing"
	}
}

const (
	Safe RevealOutcome = iota
	HitMine
)

func (outcome RevealOutcome) String() string {
	if outcome == HitMine {
		return "mine"
	}
	return "safe"
}

const (
	// Above this fraction of mined cells, placement shuffles instead of
	// sampling with rejection
	shuffleDensity = 0.5

	maxNeighbors = 8
)
