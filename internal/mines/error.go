package mines

import "errors"

var (
	ErrInvalidParams = errors.New("invalid game params")
	ErrOutOfBounds   = errors.New("point out of bounds")
	ErrTooManyMines  = errors.New("not enough closed cells to place mines")
	ErrInvalidLayout = errors.New("invalid mine layout")
)
