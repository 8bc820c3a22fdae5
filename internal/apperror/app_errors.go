package apperror

import "errors"

var (
	ErrIndexOutOfRange = errors.New("cell index is out of range")
	ErrIndexOccupied   = errors.New("cell is already occupied")
	ErrInvalidMark     = errors.New("invalid player mark")
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
)
