package errors

import "errors"

var (
	ErrInvalidColor      = errors.New("invalid color")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrEmptyString       = errors.New("empty string")

	ErrInvalidSGF  = errors.New("invalid sgf")
	ErrEmptyRecord = errors.New("sgf record has no game tree")
	ErrOutOfBoard  = errors.New("coordinate is outside the board")
	ErrInternal    = errors.New("internal error")
)
