package schedulers

import "cpu-scheduler-sim/internal/core"

const (
	FirstComeFirstServe = "fcfs"
	ShortestJobFirst    = "sjf"
	RoundRobin          = "rr"
)

// Algorithms lists the supported algorithm names in display order.
func Algorithms() []string {
	return []string{FirstComeFirstServe, ShortestJobFirst, RoundRobin}
}

// Overflow records a re-enqueue the ready queue refused.
type Overflow struct {
	ProcessId int `json:"process_id"`
	Time      int `json:"time"`
	Remaining int `json:"remaining"`
}

// Result is a finished run. Processes are in execution order for the
// non-preemptive algorithms and in arrival order for round robin.
type Result struct {
	Algorithm   string
	TimeQuantum int
	Processes   core.ProcessSet
	// Preemptive is set for algorithms that report context switches.
	Preemptive      bool
	ContextSwitches int
	Overflows       []Overflow
	Stalled         []int
	Metric          core.CpuMetric
	Timeline        []core.Slice
}

func (r Result) Completed() core.ProcessSet {
	if len(r.Stalled) == 0 {
		return r.Processes
	}
	done := make(core.ProcessSet, 0, len(r.Processes))
	for _, p := range r.Processes {
		if p.Done() {
			done = append(done, p)
		}
	}
	return done
}
