package requests

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cpu-scheduler-sim/internal/core"
)

type Job struct {
	ProcessId int `json:"process_id" yaml:"process_id"`
	CpuTime   int `json:"cpu_time" yaml:"cpu_time"`
}

// ScheduleRequests is the body accepted by the HTTP api and the jobs file read
// by the simulate command. Zero option fields fall back to configuration.
type ScheduleRequests struct {
	Jobs          []Job `json:"jobs" yaml:"jobs"`
	TimeQuantum   int   `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	QueueCapacity int   `json:"queue_capacity,omitempty" yaml:"queue_capacity,omitempty"`
	RetryDropped  *bool `json:"retry_dropped,omitempty" yaml:"retry_dropped,omitempty"`
}

// ProcessSet converts the jobs into a process set in request order.
func (r ScheduleRequests) ProcessSet() core.ProcessSet {
	set := make(core.ProcessSet, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		set = append(set, core.NewProcess(job.ProcessId, job.CpuTime))
	}
	return set
}

// ReferenceJobs is the four-process workload used when no jobs are supplied.
func ReferenceJobs() []Job {
	return []Job{
		{ProcessId: 1, CpuTime: 6},
		{ProcessId: 2, CpuTime: 8},
		{ProcessId: 3, CpuTime: 7},
		{ProcessId: 4, CpuTime: 3},
	}
}

// ParseJobs decodes a jobs document. YAML is a superset of JSON, so both
// formats go through the same decoder.
func ParseJobs(data []byte) (ScheduleRequests, error) {
	var request ScheduleRequests
	if err := yaml.Unmarshal(data, &request); err != nil {
		return ScheduleRequests{}, fmt.Errorf("decoding jobs: %w", err)
	}
	return request, nil
}

func LoadJobsFile(path string) (ScheduleRequests, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScheduleRequests{}, fmt.Errorf("reading jobs file: %w", err)
	}
	request, err := ParseJobs(data)
	if err != nil {
		return ScheduleRequests{}, fmt.Errorf("%s: %w", path, err)
	}
	return request, nil
}
