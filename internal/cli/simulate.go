package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/report"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/schedulers"
	"cpu-scheduler-sim/internal/service"
)

type simulateOptions struct {
	algorithm     string
	jobsFile      string
	output        string
	timeQuantum   int
	queueCapacity int
	retryDropped  bool
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scheduling simulation and print the results",
		Example: `  cpu-scheduler-sim simulate
  cpu-scheduler-sim simulate --algorithm rr --quantum 3 --queue-capacity 4
  cpu-scheduler-sim simulate --jobs jobs.yaml --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.loadEnvironment()
			if err != nil {
				return err
			}

			request := requests.ScheduleRequests{Jobs: requests.ReferenceJobs()}
			if opts.jobsFile != "" {
				if request, err = requests.LoadJobsFile(opts.jobsFile); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("quantum") {
				request.TimeQuantum = opts.timeQuantum
			}
			if cmd.Flags().Changed("queue-capacity") {
				request.QueueCapacity = opts.queueCapacity
			}
			if cmd.Flags().Changed("retry-dropped") {
				request.RetryDropped = &opts.retryDropped
			}

			return simulate(cmd.OutOrStdout(), opts, request, cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "all", "Algorithm: fcfs, sjf, rr or all")
	cmd.Flags().StringVar(&opts.jobsFile, "jobs", "", "YAML or JSON jobs file (default: built-in four-process workload)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format: table or json")
	cmd.Flags().IntVarP(&opts.timeQuantum, "quantum", "q", 0, "Round robin time quantum (overrides config)")
	cmd.Flags().IntVar(&opts.queueCapacity, "queue-capacity", 0, "Round robin ready queue capacity (overrides config)")
	cmd.Flags().BoolVar(&opts.retryDropped, "retry-dropped", false, "Re-admit processes rejected by a full ready queue")
	return cmd
}

func simulate(w io.Writer, opts simulateOptions, request requests.ScheduleRequests, cfg *config.SchedulerConfig, logger *slog.Logger) error {
	algorithms := []string{opts.algorithm}
	if opts.algorithm == "all" {
		algorithms = schedulers.Algorithms()
	}

	runId := uuid.NewString()
	results := make(map[string]responses.ScheduleResponse, len(algorithms))
	for _, algorithm := range algorithms {
		response, err := service.Run(algorithm, request, cfg, logger)
		if err != nil {
			return fmt.Errorf("%s: %w", algorithm, err)
		}
		response.RunId = runId
		results[algorithm] = response
	}
	logger.Debug("simulation finished", "run_id", runId, "algorithms", algorithms)

	switch opts.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(algorithms) == 1 {
			return enc.Encode(results[algorithms[0]])
		}
		return enc.Encode(responses.CompareResponse{RunId: runId, Results: results})
	case "table":
		if len(algorithms) == 1 {
			report.Render(w, results[algorithms[0]])
			return nil
		}
		report.RenderComparison(w, algorithms, results)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}
}
