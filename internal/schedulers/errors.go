package schedulers

import "errors"

var (
	ErrInvalidTimeQuantum = errors.New("time quantum must be positive")
	ErrQueueCapacity      = errors.New("ready queue capacity out of range")
	ErrTooManyDispatches  = errors.New("time quantum too small for total burst")
	ErrUnknownAlgorithm   = errors.New("unknown scheduling algorithm")
)
