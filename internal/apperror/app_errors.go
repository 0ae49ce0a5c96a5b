package apperror

import "errors"

var (
	ErrInvalidDimension     = errors.New("board dimension must be positive")
	ErrCoordinateOutOfRange = errors.New("coordinate is out of range")
	ErrInvalidMoveInput     = errors.New("move must be two integers: row and column")
	ErrInputClosed          = errors.New("input closed before the game finished")
)
