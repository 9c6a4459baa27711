package util

import "cpu-scheduler-sim/internal/responses"

// CalculateAverage averages the timing columns over completed processes.
// Stalled rows are skipped and an empty input yields zeros.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64
	var proccessCount float64

	for _, proccess := range proccessDetails {
		if proccess.Stalled {
			continue
		}
		waitingTimeSum += float64(proccess.WaitingTime)
		responseTimeSum += float64(proccess.ResponseTime)
		turnAroundTimeSum += float64(proccess.TurnAroundTime)
		proccessCount++
	}

	if proccessCount == 0 {
		return 0, 0, 0
	}

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTimeAroundTime = turnAroundTimeSum / proccessCount
	return
}
