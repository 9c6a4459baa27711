package core

import (
	"errors"
	"fmt"
)

// MaxTotalBurst bounds the summed burst of a set, keeping every clock value
// and prefix sum well inside int range.
const MaxTotalBurst = 1_000_000

var (
	ErrInvalidBurst     = errors.New("burst time must be positive")
	ErrBurstTooLarge    = errors.New("total burst time exceeds limit")
	ErrDuplicateProcess = errors.New("duplicate process id")
)

// Process is one schedulable unit. Id and Burst are fixed at creation,
// the remaining fields are outputs written by a single scheduler run.
type Process struct {
	Id         int
	Burst      int
	Remaining  int
	Waiting    int
	Turnaround int
	// Response is the clock value at the first dispatch.
	Response int
}

// Done reports whether the process has consumed its whole burst.
func (p Process) Done() bool {
	return p.Remaining == 0
}

// ProcessSet is ordered by arrival.
type ProcessSet []Process

func NewProcess(id, burst int) Process {
	return Process{Id: id, Burst: burst, Remaining: burst}
}

// Clone returns an independent copy, so a scheduler never mutates its caller's set.
func (s ProcessSet) Clone() ProcessSet {
	if s == nil {
		return nil
	}
	clone := make(ProcessSet, len(s))
	copy(clone, s)
	return clone
}

func (s ProcessSet) Validate() error {
	seen := make(map[int]struct{}, len(s))
	total := 0
	for _, p := range s {
		if p.Burst <= 0 {
			return fmt.Errorf("process %d: %w (got %d)", p.Id, ErrInvalidBurst, p.Burst)
		}
		// checked per process so the running total cannot wrap
		if p.Burst > MaxTotalBurst-total {
			return fmt.Errorf("process %d: %w (max %d)", p.Id, ErrBurstTooLarge, MaxTotalBurst)
		}
		total += p.Burst
		if _, ok := seen[p.Id]; ok {
			return fmt.Errorf("process %d: %w", p.Id, ErrDuplicateProcess)
		}
		seen[p.Id] = struct{}{}
	}
	return nil
}

func (s ProcessSet) TotalBurst() int {
	total := 0
	for _, p := range s {
		total += p.Burst
	}
	return total
}

func (s ProcessSet) Ids() []int {
	ids := make([]int, len(s))
	for i, p := range s {
		ids[i] = p.Id
	}
	return ids
}

// Reset prepares every process for a fresh run.
func (s ProcessSet) Reset() {
	for i := range s {
		s[i].Remaining = s[i].Burst
		s[i].Waiting = 0
		s[i].Turnaround = 0
		s[i].Response = 0
	}
}
