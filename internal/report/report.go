package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler-sim/internal/responses"
)

var titles = map[string]string{
	"fcfs": "FCFS Scheduling (Non-preemptive)",
	"sjf":  "SJF Scheduling (Non-preemptive)",
	"rr":   "Round Robin Scheduling (Preemptive)",
}

// Render writes a summary as a title, a Gantt line, the per-process table
// and the aggregate lines.
func Render(w io.Writer, resp responses.ScheduleResponse) {
	outputTitle(w, title(resp))
	outputGantt(w, resp.Timeline)
	outputSchedule(w, resp)

	_, _ = fmt.Fprintf(w, "Average Waiting Time: %.2f\n", resp.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", resp.AverageTurnAroundTime)
	if resp.ContextSwitches != nil {
		_, _ = fmt.Fprintf(w, "Context Switches (CPU Utilisation Indicator): %d\n", *resp.ContextSwitches)
	}
	for _, o := range resp.Overflows {
		_, _ = fmt.Fprintf(w, "Queue full! Process %d cannot be re-enqueued at t=%d (remaining %d).\n",
			o.ProcessId, o.Time, o.Remaining)
	}
	if len(resp.Stalled) > 0 {
		_, _ = fmt.Fprintf(w, "Stalled processes (excluded from averages): %v\n", resp.Stalled)
	}
	_, _ = fmt.Fprintln(w)
}

// RenderComparison renders every summary in order followed by a side by side table.
func RenderComparison(w io.Writer, order []string, results map[string]responses.ScheduleResponse) {
	rows := make([][]string, 0, len(order))
	for _, algorithm := range order {
		resp, ok := results[algorithm]
		if !ok {
			continue
		}
		Render(w, resp)

		switches := "-"
		if resp.ContextSwitches != nil {
			switches = fmt.Sprint(*resp.ContextSwitches)
		}
		rows = append(rows, []string{
			algorithm,
			fmt.Sprintf("%.2f", resp.AverageWaitingTime),
			fmt.Sprintf("%.2f", resp.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", resp.AverageResponseTime),
			switches,
		})
	}

	_, _ = fmt.Fprintln(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Algorithm", "Avg Waiting", "Avg Turnaround", "Avg Response", "Context Switches"})
	table.AppendBulk(rows)
	table.Render()
}

func title(resp responses.ScheduleResponse) string {
	t, ok := titles[resp.Algorithm]
	if !ok {
		t = resp.Algorithm
	}
	if resp.TimeQuantum > 0 {
		t = fmt.Sprintf("%s, quantum %d", t, resp.TimeQuantum)
	}
	return t
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))
	_, _ = fmt.Fprintln(w, title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

func outputGantt(w io.Writer, timeline []responses.SliceResponse) {
	if len(timeline) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range timeline {
		pid := fmt.Sprintf("P%d", s.ProcessId)
		padding := strings.Repeat(" ", max(0, (8-len(pid))/2))
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range timeline {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(timeline)-1 {
			_, _ = fmt.Fprint(w, s.Stop)
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

func outputSchedule(w io.Writer, resp responses.ScheduleResponse) {
	rows := make([][]string, 0, len(resp.Details))
	for _, d := range resp.Details {
		if d.Stalled {
			rows = append(rows, []string{fmt.Sprint(d.ProcessId), fmt.Sprint(d.BurstTime), "stalled", "-", "-"})
			continue
		}
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.ResponseTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"PID", "Burst", "Waiting", "Turnaround", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "Average",
		fmt.Sprintf("%.2f", resp.AverageWaitingTime),
		fmt.Sprintf("%.2f", resp.AverageTurnAroundTime),
		fmt.Sprintf("%.2f", resp.AverageResponseTime)})
	table.Render()
}
