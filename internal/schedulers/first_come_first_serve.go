package schedulers

import "cpu-scheduler-sim/internal/core"

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
func ScheduleFirstComeFirstServe(processes core.ProcessSet, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	o.logger.Debug("running fcfs algorithm", "processes", len(processes))

	if err := processes.Validate(); err != nil {
		return Result{}, err
	}

	result := runToCompletion(processes.Clone())
	result.Algorithm = FirstComeFirstServe
	return result, nil
}
