package schedulers

import (
	"fmt"

	"cpu-scheduler-sim/internal/core"
)

// ScheduleRoundRobin simulates time-sliced execution over a bounded ready
// queue. A process keeps its queue slot while it runs, so its re-enqueue is
// attempted before the slot is released. A rejected re-enqueue is recorded as
// an Overflow and the process stalls unless WithRetryDropped is set.
func ScheduleRoundRobin(processes core.ProcessSet, timeQuantum int, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	logger := o.logger.With("algorithm", RoundRobin)
	logger.Debug("running roundRobin algorithm", "time_quantum", timeQuantum, "queue_capacity", o.queueCapacity)

	if timeQuantum <= 0 {
		return Result{}, fmt.Errorf("%w (got %d)", ErrInvalidTimeQuantum, timeQuantum)
	}
	if err := processes.Validate(); err != nil {
		return Result{}, err
	}
	if o.queueCapacity < len(processes) {
		return Result{}, fmt.Errorf("%w: capacity %d is smaller than process count %d", ErrQueueCapacity, o.queueCapacity, len(processes))
	}
	if o.queueCapacity > MaxQueueCapacity {
		return Result{}, fmt.Errorf("%w: capacity %d exceeds %d", ErrQueueCapacity, o.queueCapacity, MaxQueueCapacity)
	}
	if n := dispatchCount(processes, timeQuantum); n > MaxDispatches {
		return Result{}, fmt.Errorf("%w: %d dispatches, max %d", ErrTooManyDispatches, n, MaxDispatches)
	}

	jobs := processes.Clone()
	jobs.Reset()

	queue := core.NewReadyQueue(o.queueCapacity)
	for i := range jobs {
		queue.Enqueue(i)
	}

	cpu := core.NewCpu()
	result := Result{
		Algorithm:   RoundRobin,
		TimeQuantum: timeQuantum,
		Preemptive:  true,
	}

	var dropped []int
	unfinished := len(jobs)
	for unfinished > 0 {
		idx, ok := queue.Front()
		if !ok {
			break
		}

		p := &jobs[idx]
		_, done := cpu.Execute(p, timeQuantum)
		logger.Debug("pid dispatched", "pid", p.Id, "clock", cpu.Clock(), "remaining", p.Remaining)

		if done {
			unfinished--
		} else if queue.Enqueue(idx) == core.RejectedFull {
			result.Overflows = append(result.Overflows, Overflow{
				ProcessId: p.Id,
				Time:      cpu.Clock(),
				Remaining: p.Remaining,
			})
			dropped = append(dropped, idx)
			logger.Warn("ready queue full, process cannot be re-enqueued",
				"pid", p.Id, "clock", cpu.Clock(), "remaining", p.Remaining, "queue_capacity", queue.Cap())
		}
		queue.Dequeue()

		if o.retryDropped {
			for len(dropped) > 0 && !queue.Full() {
				queue.Enqueue(dropped[0])
				dropped = dropped[1:]
			}
		}
	}

	for _, p := range jobs {
		if !p.Done() {
			result.Stalled = append(result.Stalled, p.Id)
		}
	}
	if len(result.Stalled) > 0 {
		logger.Warn("ready queue drained with unfinished processes", "stalled", result.Stalled)
	}

	result.Processes = jobs
	result.ContextSwitches = cpu.ContextSwitches()
	result.Metric = cpu.Metric()
	result.Timeline = cpu.Timeline()
	return result, nil
}

// dispatchCount is the number of slices a run will execute. Bursts are
// already validated, so the sum cannot overflow.
func dispatchCount(processes core.ProcessSet, timeQuantum int) int {
	n := 0
	for _, p := range processes {
		n += (p.Burst-1)/timeQuantum + 1
	}
	return n
}
