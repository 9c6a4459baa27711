package schedulers

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-sim/internal/core"
)

func TestScheduleShortestJobFirst_Reference(t *testing.T) {
	result, err := ScheduleShortestJobFirst(referenceProcesses())
	require.NoError(t, err)

	assert.Equal(t, ShortestJobFirst, result.Algorithm)
	assert.Equal(t, []int{4, 1, 3, 2}, result.Processes.Ids())
	assert.Equal(t, []int{0, 3, 9, 16}, field(result.Processes, waiting))
	assert.Equal(t, []int{3, 9, 16, 24}, field(result.Processes, turnaround))

	resp := GenerateResponse(result)
	assert.InDelta(t, 7.0, resp.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 13.0, resp.AverageTurnAroundTime, 1e-9)
	assert.Nil(t, resp.ContextSwitches)
}

func TestScheduleShortestJobFirst_Invariants(t *testing.T) {
	set := core.ProcessSet{
		core.NewProcess(10, 5), core.NewProcess(11, 1), core.NewProcess(12, 9),
		core.NewProcess(13, 2), core.NewProcess(14, 5), core.NewProcess(15, 3),
	}
	result, err := ScheduleShortestJobFirst(set)
	require.NoError(t, err)

	procs := result.Processes
	require.Len(t, procs, len(set))
	assert.Equal(t, 0, procs[0].Waiting)
	for i := range procs {
		if i > 0 {
			assert.LessOrEqual(t, procs[i-1].Burst, procs[i].Burst)
			assert.Equal(t, procs[i-1].Waiting+procs[i-1].Burst, procs[i].Waiting)
		}
		assert.Equal(t, procs[i].Waiting+procs[i].Burst, procs[i].Turnaround)
		assert.True(t, procs[i].Done())
	}
}

func TestScheduleShortestJobFirst_TiesKeepArrivalOrder(t *testing.T) {
	set := core.ProcessSet{
		core.NewProcess(7, 4), core.NewProcess(3, 2), core.NewProcess(5, 4), core.NewProcess(1, 4),
	}
	result, err := ScheduleShortestJobFirst(set)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7, 5, 1}, result.Processes.Ids())
}

func TestScheduleShortestJobFirst_DoesNotMutateInput(t *testing.T) {
	set := referenceProcesses()
	_, err := ScheduleShortestJobFirst(set)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4}, set.Ids())
	assert.Equal(t, []int{0, 0, 0, 0}, field(set, waiting))
}

func TestScheduleShortestJobFirst_Idempotent(t *testing.T) {
	first, err := ScheduleShortestJobFirst(referenceProcesses())
	require.NoError(t, err)
	second, err := ScheduleShortestJobFirst(referenceProcesses())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScheduleShortestJobFirst_SingleProcess(t *testing.T) {
	result, err := ScheduleShortestJobFirst(core.ProcessSet{core.NewProcess(1, 11)})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Processes[0].Waiting)
	assert.Equal(t, 11, result.Processes[0].Turnaround)
	assert.Zero(t, GenerateResponse(result).AverageWaitingTime)
}

func TestScheduleShortestJobFirst_Empty(t *testing.T) {
	result, err := ScheduleShortestJobFirst(core.ProcessSet{})
	require.NoError(t, err)
	assert.Empty(t, result.Processes)

	resp := GenerateResponse(result)
	assert.Zero(t, resp.AverageWaitingTime)
	assert.Zero(t, resp.AverageTurnAroundTime)
	assert.Empty(t, resp.Details)
}

func TestScheduleShortestJobFirst_InvalidBurst(t *testing.T) {
	_, err := ScheduleShortestJobFirst(core.ProcessSet{core.NewProcess(1, 0)})
	assert.True(t, errors.Is(err, core.ErrInvalidBurst))
}

func TestScheduleShortestJobFirst_TotalBurstLimit(t *testing.T) {
	_, err := ScheduleShortestJobFirst(core.ProcessSet{core.NewProcess(1, math.MaxInt), core.NewProcess(2, math.MaxInt)})
	assert.True(t, errors.Is(err, core.ErrBurstTooLarge), "got %v", err)

	result, err := ScheduleShortestJobFirst(core.ProcessSet{
		core.NewProcess(1, core.MaxTotalBurst/2), core.NewProcess(2, core.MaxTotalBurst/2),
	})
	require.NoError(t, err)
	for _, p := range result.Processes {
		assert.GreaterOrEqual(t, p.Waiting, 0)
		assert.GreaterOrEqual(t, p.Turnaround, p.Burst)
	}
	assert.Equal(t, core.MaxTotalBurst, result.Processes[1].Turnaround)
}
