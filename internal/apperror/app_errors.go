package apperror

import "errors"

var (
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrOutOfRange     = errors.New("cell coordinates out of range")
	ErrMalformedInput = errors.New("malformed move input")
	ErrGameFinished   = errors.New("game is already finished")
	ErrNotYourTurn    = errors.New("it's not your turn")
)
