package core

// Slice is one uninterrupted stretch of CPU time given to a process.
type Slice struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	Stop      int `json:"stop"`
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single simulated core driven by a discrete clock.
type Cpu struct {
	clock           int
	busy            int
	contextSwitches int
	timeline        []Slice
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make([]Slice, 0)}
}

// Execute dispatches p for at most quantum time units. Every call counts as
// one context switch. When the burst is used up the waiting time is fixed as
// completion time minus burst, since every process is ready at time 0.
func (c *Cpu) Execute(p *Process, quantum int) (ran int, done bool) {
	c.contextSwitches++
	if p.Remaining == p.Burst {
		p.Response = c.clock
	}

	ran = quantum
	if p.Remaining <= quantum {
		ran = p.Remaining
	}
	c.timeline = append(c.timeline, Slice{ProcessId: p.Id, Start: c.clock, Stop: c.clock + ran})
	c.clock += ran
	c.busy += ran
	p.Remaining -= ran

	if p.Remaining == 0 {
		p.Waiting = c.clock - p.Burst
		p.Turnaround = p.Waiting + p.Burst
		return ran, true
	}
	return ran, false
}

func (c *Cpu) Clock() int           { return c.clock }
func (c *Cpu) ContextSwitches() int { return c.contextSwitches }

func (c *Cpu) Timeline() []Slice {
	out := make([]Slice, len(c.timeline))
	copy(out, c.timeline)
	return out
}

func (c *Cpu) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.clock,
		UtilizationTime: c.busy,
		IdleTime:        c.clock - c.busy,
	}
}
