package tictactoe

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameEngine interface {
	MakeMark(row, col int) bool
	IsGameOver() bool
	Outcome() entity.Outcome
	CurrentMark() entity.Mark
	String() string
}

// GameController reads moves as text lines and prints the board after each one.
type GameController struct {
	logger *slog.Logger

	game    gameEngine
	scanner *bufio.Scanner
	out     io.Writer
}

func NewGameController(logger *slog.Logger, game gameEngine, in io.Reader, out io.Writer) *GameController {
	return &GameController{
		logger:  logger.With("component", "game_controller"),
		game:    game,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Play - prompts for moves until the game has an outcome.
func (that *GameController) Play(ctx context.Context) (entity.Outcome, error) {
	log := that.logger.With("method", "Play")

	for !that.game.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return that.game.Outcome(), err
		}

		mark := that.game.CurrentMark()
		that.print("%s", that.game.String())
		that.print("Player %s (row col): ", mark)

		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return that.game.Outcome(), fmt.Errorf("failed to read move: %w", err)
			}
			return that.game.Outcome(), apperror.ErrInputClosed
		}

		row, col, err := ParseMove(that.scanner.Text())
		if err != nil {
			log.Debug("invalid input", "input", that.scanner.Text(), "error", err)
			that.print("Invalid input, enter row and column.\n")
			continue
		}

		if !that.game.MakeMark(row, col) {
			log.Debug("move rejected", "mark", mark.String(), "row", row, "col", col)
			that.print("Invalid move!\n")
			continue
		}

		log.Debug("move accepted", "mark", mark.String(), "row", row, "col", col)
	}

	outcome := that.game.Outcome()
	that.print("%s", that.game.String())
	that.print("Game over: %s\n", outcome)

	log.Info("game finished", "outcome", outcome.String())

	return outcome, nil
}

func (that *GameController) print(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// ParseMove - accepts "row col" or "row,col".
func ParseMove(line string) (int, int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: got %q", apperror.ErrInvalidMoveInput, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", apperror.ErrInvalidMoveInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q", apperror.ErrInvalidMoveInput, fields[1])
	}

	return row, col, nil
}
