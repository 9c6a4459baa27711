package schedulers

import "cpu-scheduler-sim/internal/core"

func referenceProcesses() core.ProcessSet {
	return core.ProcessSet{
		core.NewProcess(1, 6),
		core.NewProcess(2, 8),
		core.NewProcess(3, 7),
		core.NewProcess(4, 3),
	}
}

func field(set core.ProcessSet, get func(core.Process) int) []int {
	out := make([]int, len(set))
	for i, p := range set {
		out[i] = get(p)
	}
	return out
}

func waiting(p core.Process) int    { return p.Waiting }
func turnaround(p core.Process) int { return p.Turnaround }
func burst(p core.Process) int      { return p.Burst }
