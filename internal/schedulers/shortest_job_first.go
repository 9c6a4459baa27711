package schedulers

import (
	"sort"

	"cpu-scheduler-sim/internal/core"
)

// ScheduleShortestJobFirst runs non-preemptive SJF on a copy of processes.
// Equal bursts keep their arrival order.
func ScheduleShortestJobFirst(processes core.ProcessSet, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	o.logger.Debug("running sjf algorithm", "processes", len(processes))

	if err := processes.Validate(); err != nil {
		return Result{}, err
	}

	jobs := processes.Clone()
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Burst < jobs[j].Burst
	})

	result := runToCompletion(jobs)
	result.Algorithm = ShortestJobFirst
	o.logger.Debug("sjf order", "ids", jobs.Ids())
	return result, nil
}

// runToCompletion executes jobs back to back in slice order. Waiting time is
// the prefix sum of the bursts that ran before each job.
func runToCompletion(jobs core.ProcessSet) Result {
	jobs.Reset()
	timeline := make([]core.Slice, 0, len(jobs))
	for i := range jobs {
		if i > 0 {
			jobs[i].Waiting = jobs[i-1].Waiting + jobs[i-1].Burst
		}
		jobs[i].Turnaround = jobs[i].Waiting + jobs[i].Burst
		jobs[i].Response = jobs[i].Waiting
		jobs[i].Remaining = 0
		timeline = append(timeline, core.Slice{
			ProcessId: jobs[i].Id,
			Start:     jobs[i].Waiting,
			Stop:      jobs[i].Turnaround,
		})
	}

	total := jobs.TotalBurst()
	return Result{
		Processes: jobs,
		Metric:    core.CpuMetric{TotalTime: total, UtilizationTime: total},
		Timeline:  timeline,
	}
}
