package entity

// Mark is the content of a single board square.
type Mark int

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkEmpty:
		return " "
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "?"
	}
}

// Outcome is derived from the board on every call and never stored.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeXWins
	OutcomeOWins
	OutcomeTie
)

func (that Outcome) String() string {
	switch that {
	case OutcomeInProgress:
		return "in progress"
	case OutcomeXWins:
		return "X wins"
	case OutcomeOWins:
		return "O wins"
	case OutcomeTie:
		return "tie"
	default:
		return "unknown"
	}
}
