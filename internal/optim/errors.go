package optim

import "errors"

// ErrInvalidConfig is returned when optimizer hyperparameters are out of range.
var ErrInvalidConfig = errors.New("invalid optimizer config")
