package schedulers

import (
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/util"
)

// GenerateResponse summarises a finished run. Rows keep the order of
// result.Processes; averages cover completed processes only.
func GenerateResponse(result Result) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(p))
	}
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	var utilization, throughput float64
	if result.Metric.TotalTime > 0 {
		utilization = float64(result.Metric.UtilizationTime) / float64(result.Metric.TotalTime)
		throughput = float64(len(result.Completed())) / float64(result.Metric.TotalTime)
	}

	response := responses.ScheduleResponse{
		Algorithm:             result.Algorithm,
		TimeQuantum:           result.TimeQuantum,
		TotalTime:             result.Metric.TotalTime,
		IdleTime:              result.Metric.IdleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		Details:               proccessDetails,
		Timeline:              generateTimeline(result.Timeline),
	}
	if result.Preemptive {
		contextSwitches := result.ContextSwitches
		response.ContextSwitches = &contextSwitches
	}
	for _, o := range result.Overflows {
		response.Overflows = append(response.Overflows, responses.OverflowResponse(o))
	}
	if len(result.Stalled) > 0 {
		response.Stalled = append([]int(nil), result.Stalled...)
	}
	return response
}

func generateProcessDetails(process core.Process) responses.ProcessResponse {
	details := responses.ProcessResponse{
		ProcessId: process.Id,
		BurstTime: process.Burst,
	}
	if !process.Done() {
		details.Stalled = true
		return details
	}
	details.WaitingTime = process.Waiting
	details.TurnAroundTime = process.Turnaround
	details.ResponseTime = process.Response
	return details
}

func generateTimeline(slices []core.Slice) []responses.SliceResponse {
	if len(slices) == 0 {
		return nil
	}
	timeline := make([]responses.SliceResponse, len(slices))
	for i, s := range slices {
		timeline[i] = responses.SliceResponse(s)
	}
	return timeline
}
