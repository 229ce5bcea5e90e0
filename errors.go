package dialog

import "errors"

// Common errors
var (
	// ErrCancelled is returned by Interact when the user presses Esc or
	// Ctrl+C. The InteractOpt variants convert it into an ok=false result.
	ErrCancelled = errors.New("cancelled")
	// ErrNoItems is returned when a list prompt is started without items.
	ErrNoItems = errors.New("no items to select from")
)
