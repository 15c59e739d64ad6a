package tui

import "errors"

// ErrMissingBrowseController is returned when no controller is provided.
var ErrMissingBrowseController = errors.New("tui: browse controller is required")

// ErrMissingSink is returned when no sink is provided.
var ErrMissingSink = errors.New("tui: sink is required")
