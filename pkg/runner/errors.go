package runner

import "errors"

var (
	// ErrNotANumber is returned when a raw measurement cannot be read as a finite number.
	ErrNotANumber = errors.New("parameter must be a number")

	// ErrInvalidChoice is returned when the user picks an entry that is not on the menu.
	ErrInvalidChoice = errors.New("bad choice")
)
