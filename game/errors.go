package game

import "github.com/pkg/errors"

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
	ErrBadInput             = errors.New("malformed coordinate")
	ErrInputClosed          = errors.New("input closed before the game ended")
	ErrInvalidSnapshot      = errors.New("invalid board snapshot")
)
