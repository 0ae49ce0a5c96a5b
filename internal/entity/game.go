package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const DefaultDimension = 3

type Option func(*Game)

// WithFinishedGameLock - rejects every move once the game has an outcome.
func WithFinishedGameLock() Option {
	return func(game *Game) {
		game.lockFinished = true
	}
}

// Game holds a square board of any dimension and the turn indicator. X always moves first.
type Game struct {
	dimension    int
	board        []Mark
	xTurn        bool
	lockFinished bool
}

func NewGame(dimension int, opts ...Option) (*Game, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidDimension, dimension)
	}

	game := &Game{
		dimension: dimension,
		board:     make([]Mark, dimension*dimension),
		xTurn:     true,
	}

	for _, opt := range opts {
		opt(game)
	}

	return game, nil
}

func NewDefaultGame(opts ...Option) *Game {
	game, err := NewGame(DefaultDimension, opts...)
	if err != nil {
		panic(err)
	}

	return game
}

// MakeMark - places the current player's mark and passes the turn.
// Returns false without touching the game when the square is out of range or already marked.
func (that *Game) MakeMark(row, col int) bool {
	if !that.isValidSquare(row, col) || that.board[that.index(row, col)] != MarkEmpty {
		return false
	}

	if that.lockFinished && that.IsGameOver() {
		return false
	}

	that.board[that.index(row, col)] = that.CurrentMark()
	that.xTurn = !that.xTurn

	return true
}

func (that *Game) Square(row, col int) (Mark, error) {
	if !that.isValidSquare(row, col) {
		return MarkEmpty, fmt.Errorf("%w: (%d, %d) on %dx%d board",
			apperror.ErrCoordinateOutOfRange, row, col, that.dimension, that.dimension)
	}

	return that.board[that.index(row, col)], nil
}

// Outcome - X is checked before O, so X wins if both somehow hold a line.
func (that *Game) Outcome() Outcome {
	switch {
	case that.isMarkWin(MarkX):
		return OutcomeXWins
	case that.isMarkWin(MarkO):
		return OutcomeOWins
	case that.isFull():
		return OutcomeTie
	default:
		return OutcomeInProgress
	}
}

func (that *Game) IsGameOver() bool {
	return that.Outcome() != OutcomeInProgress
}

func (that *Game) IsXTurn() bool {
	return that.xTurn
}

// CurrentMark - the mark the next accepted move will place.
func (that *Game) CurrentMark() Mark {
	if that.xTurn {
		return MarkX
	}
	return MarkO
}

func (that *Game) Dimension() int {
	return that.dimension
}

// String renders the header of column indices, one line per row and a trailing blank line:
//
//	  012
//	0 O
//	1  X
//	2 OX
func (that *Game) String() string {
	var output strings.Builder

	output.WriteString("  ")
	for col := 0; col < that.dimension; col++ {
		output.WriteString(strconv.Itoa(col))
	}
	output.WriteString("\n")

	for row := 0; row < that.dimension; row++ {
		output.WriteString(strconv.Itoa(row))
		output.WriteString(" ")
		for col := 0; col < that.dimension; col++ {
			output.WriteString(that.board[that.index(row, col)].String())
		}
		output.WriteString("\n")
	}
	output.WriteString("\n")

	return output.String()
}

func (that *Game) isValidSquare(row, col int) bool {
	return row >= 0 && row < that.dimension && col >= 0 && col < that.dimension
}

func (that *Game) index(row, col int) int {
	return row*that.dimension + col
}

// isMarkWin checks every row, every column and the two corner-to-corner diagonals.
func (that *Game) isMarkWin(mark Mark) bool {
	for i := 0; i < that.dimension; i++ {
		if that.isLine(mark, func(j int) int { return that.index(i, j) }) ||
			that.isLine(mark, func(j int) int { return that.index(j, i) }) {
			return true
		}
	}

	return that.isLine(mark, func(j int) int { return that.index(j, j) }) ||
		that.isLine(mark, func(j int) int { return that.index(that.dimension-1-j, j) })
}

func (that *Game) isLine(mark Mark, square func(j int) int) bool {
	for j := 0; j < that.dimension; j++ {
		if that.board[square(j)] != mark {
			return false
		}
	}
	return true
}

func (that *Game) isFull() bool {
	for _, mark := range that.board {
		if mark == MarkEmpty {
			return false
		}
	}
	return true
}
