package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler-sim/internal/responses"
)

func sjfSummary() responses.ScheduleResponse {
	return responses.ScheduleResponse{
		Algorithm:             "sjf",
		AverageWaitingTime:    7,
		AverageTurnAroundTime: 13,
		AverageResponseTime:   7,
		Details: []responses.ProcessResponse{
			{ProcessId: 4, BurstTime: 3, WaitingTime: 0, TurnAroundTime: 3},
			{ProcessId: 1, BurstTime: 6, WaitingTime: 3, TurnAroundTime: 9, ResponseTime: 3},
		},
		Timeline: []responses.SliceResponse{{ProcessId: 4, Start: 0, Stop: 3}, {ProcessId: 1, Start: 3, Stop: 9}},
	}
}

func TestRender_NonPreemptive(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, sjfSummary())
	out := buf.String()

	assert.Contains(t, out, "SJF Scheduling (Non-preemptive)")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "Turnaround")
	assert.Contains(t, out, "Average Waiting Time: 7.00")
	assert.Contains(t, out, "Average Turnaround Time: 13.00")
	assert.NotContains(t, out, "Context Switches")
	assert.Less(t, strings.Index(out, "P4"), strings.Index(out, "P1"))
}

func TestRender_RoundRobinWithOverflow(t *testing.T) {
	switches := 8
	resp := responses.ScheduleResponse{
		Algorithm:          "rr",
		TimeQuantum:        3,
		AverageWaitingTime: 35.0 / 3.0,
		ContextSwitches:    &switches,
		Details: []responses.ProcessResponse{
			{ProcessId: 1, BurstTime: 6, Stalled: true},
			{ProcessId: 2, BurstTime: 8, WaitingTime: 12, TurnAroundTime: 20, ResponseTime: 3},
		},
		Overflows: []responses.OverflowResponse{{ProcessId: 1, Time: 3, Remaining: 3}},
		Stalled:   []int{1},
	}

	var buf bytes.Buffer
	Render(&buf, resp)
	out := buf.String()

	assert.Contains(t, out, "Round Robin Scheduling (Preemptive), quantum 3")
	assert.Contains(t, out, "Average Waiting Time: 11.67")
	assert.Contains(t, out, "Context Switches (CPU Utilisation Indicator): 8")
	assert.Contains(t, out, "Queue full! Process 1 cannot be re-enqueued at t=3 (remaining 3).")
	assert.Contains(t, out, "stalled")
	assert.Contains(t, out, "Stalled processes (excluded from averages): [1]")
}

func TestRenderComparison(t *testing.T) {
	switches := 9
	rr := responses.ScheduleResponse{Algorithm: "rr", TimeQuantum: 3, AverageWaitingTime: 12.5, ContextSwitches: &switches}

	var buf bytes.Buffer
	RenderComparison(&buf, []string{"fcfs", "sjf", "rr"}, map[string]responses.ScheduleResponse{
		"sjf": sjfSummary(),
		"rr":  rr,
	})
	out := buf.String()

	assert.Contains(t, out, "Comparison")
	assert.Contains(t, out, "12.50")
	assert.NotContains(t, out, "FCFS Scheduling")
	assert.Less(t, strings.Index(out, "SJF Scheduling"), strings.Index(out, "Round Robin Scheduling"))
}
