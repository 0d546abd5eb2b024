package scoring

import "errors"

var (
	ErrMissingAnswer      = errors.New("missing answer")
	ErrInvalidOptionIndex = errors.New("invalid option index")
	ErrUnknownQuestion    = errors.New("answer references unknown question")
	ErrUnreachableModule  = errors.New("module unreachable")
	ErrInvalidBank        = errors.New("invalid question bank")
)
