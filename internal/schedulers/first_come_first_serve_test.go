package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleFirstComeFirstServe_Reference(t *testing.T) {
	result, err := ScheduleFirstComeFirstServe(referenceProcesses())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4}, result.Processes.Ids())
	assert.Equal(t, []int{0, 6, 14, 21}, field(result.Processes, waiting))
	assert.Equal(t, []int{6, 14, 21, 24}, field(result.Processes, turnaround))
	assert.Equal(t, 24, result.Metric.TotalTime)
	assert.Len(t, result.Timeline, 4)
}
