package service

import (
	"errors"
	"log/slog"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/schedulers"
)

// Run schedules request with algorithm, filling unset round robin options
// from cfg, and returns the summary without a run id.
func Run(algorithm string, request requests.ScheduleRequests, cfg *config.SchedulerConfig, logger *slog.Logger) (responses.ScheduleResponse, error) {
	timeQuantum := cfg.RoundRobinTimeQuantum
	if request.TimeQuantum != 0 {
		timeQuantum = request.TimeQuantum
	}
	queueCapacity := cfg.RoundRobinQueueCapacity
	if request.QueueCapacity != 0 {
		queueCapacity = request.QueueCapacity
	}
	retryDropped := cfg.RoundRobinRetryDropped
	if request.RetryDropped != nil {
		retryDropped = *request.RetryDropped
	}

	result, err := schedulers.Schedule(algorithm, request.ProcessSet(), timeQuantum,
		schedulers.WithQueueCapacity(queueCapacity),
		schedulers.WithRetryDropped(retryDropped),
		schedulers.WithLogger(logger),
	)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return schedulers.GenerateResponse(result), nil
}

// IsConfigurationError reports whether err was caused by the caller's input
// rather than by the simulator.
func IsConfigurationError(err error) bool {
	for _, target := range []error{
		core.ErrInvalidBurst,
		core.ErrBurstTooLarge,
		core.ErrDuplicateProcess,
		schedulers.ErrInvalidTimeQuantum,
		schedulers.ErrQueueCapacity,
		schedulers.ErrTooManyDispatches,
		schedulers.ErrUnknownAlgorithm,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
