package responses

type ProcessResponse struct {
	ProcessId      int  `json:"process_id"`
	BurstTime      int  `json:"burst_time"`
	WaitingTime    int  `json:"waiting_time"`
	TurnAroundTime int  `json:"turn_around_time"`
	ResponseTime   int  `json:"response_time"`
	Stalled        bool `json:"stalled,omitempty"`
}

type OverflowResponse struct {
	ProcessId int `json:"process_id"`
	Time      int `json:"time"`
	Remaining int `json:"remaining"`
}

type SliceResponse struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	Stop      int `json:"stop"`
}

type ScheduleResponse struct {
	RunId                 string             `json:"run_id,omitempty"`
	Algorithm             string             `json:"algorithm"`
	TimeQuantum           int                `json:"time_quantum,omitempty"`
	TotalTime             int                `json:"total_time"`
	IdleTime              int                `json:"idle_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
	ContextSwitches       *int               `json:"context_switches,omitempty"`
	Details               []ProcessResponse  `json:"details"`
	Overflows             []OverflowResponse `json:"overflows,omitempty"`
	Stalled               []int              `json:"stalled,omitempty"`
	Timeline              []SliceResponse    `json:"timeline,omitempty"`
}

// CompareResponse holds one summary per algorithm, keyed by algorithm name.
type CompareResponse struct {
	RunId   string                      `json:"run_id"`
	Results map[string]ScheduleResponse `json:"results"`
}
