package game

// State is the phase of a game.
type State int

const (
	InProgress State = iota
	Won
	Draw
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Status is the state of a game together with the winner, if any.
type Status struct {
	State  State
	Winner PlayerMark
}

// IsTerminal reports whether the game has ended.
func (s Status) IsTerminal() bool {
	return s.State == Won || s.State == Draw
}

func (s Status) String() string {
	if s.State == Won {
		return "won(" + string(s.Winner) + ")"
	}
	return s.State.String()
}
