package schedulers

import (
	"fmt"

	"cpu-scheduler-sim/internal/core"
)

// Schedule dispatches to the named algorithm. timeQuantum is ignored by the
// non-preemptive algorithms.
func Schedule(algorithm string, processes core.ProcessSet, timeQuantum int, opts ...Option) (Result, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes, opts...)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes, opts...)
	case RoundRobin:
		return ScheduleRoundRobin(processes, timeQuantum, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}
