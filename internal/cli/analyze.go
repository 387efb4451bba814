package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"project-management/internal/gantt"
	"project-management/internal/gantt/usecase"
	"project-management/pkg/response"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <project.yaml>",
		Short: "Compute slack and the critical path of a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			schedule, err := loadSchedule(args[0])
			if err != nil {
				return err
			}
			result := usecase.AnalyzeSchedule(schedule, time.Now())
			return writeAnalysis(cmd.OutOrStdout(), format, schedule, result)
		},
	}
	cmd.Flags().StringP("format", "f", formatTable, "Output format (table, json)")
	return cmd
}

func newScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <project.yaml>",
		Short: "Print the tasks and links built from a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := loadSchedule(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), newScheduleOutput(schedule))
		},
	}
}

func loadSchedule(path string) (gantt.Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return gantt.Schedule{}, err
	}
	defer f.Close()

	project, err := decodeProject(f)
	if err != nil {
		return gantt.Schedule{}, err
	}
	return usecase.BuildSchedule(project)
}

func writeAnalysis(w io.Writer, format string, schedule gantt.Schedule, result gantt.ScheduleResult) error {
	switch format {
	case formatJSON:
		return writeJSON(w, newAnalysisOutput(result))
	case formatTable:
		return writeTable(w, schedule, result)
	}
	return fmt.Errorf("unknown format %q (want %s or %s)", format, formatTable, formatJSON)
}

func writeTable(w io.Writer, schedule gantt.Schedule, result gantt.ScheduleResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TASK\tKIND\tDUR\tES\tEF\tLS\tLF\tSLACK\tCRITICAL")
	for _, t := range schedule.Tasks {
		tm := result.Timings[t.ID]
		critical := ""
		if tm.Critical {
			critical = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			t.Label, t.Kind, t.Duration, tm.EarlyStart, tm.EarlyFinish, tm.LateStart, tm.LateFinish, tm.Slack, critical)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nTotal duration: %d days\nProject end:    %s\n", result.TotalDuration, result.ProjectEndDate)
	if result.HasCycle {
		fmt.Fprintln(w, "Warning: dependency cycle detected, some links were ignored")
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type analysisOutput struct {
	CriticalTasks  []string       `json:"criticalTasks"`
	TotalDuration  int            `json:"totalDuration"`
	ProjectEndDate string         `json:"projectEndDate"`
	Slack          map[string]int `json:"slack"`
	HasCycle       bool           `json:"has_cycle"`
}

func newAnalysisOutput(r gantt.ScheduleResult) analysisOutput {
	return analysisOutput{
		CriticalTasks:  r.CriticalTaskIDs,
		TotalDuration:  r.TotalDuration,
		ProjectEndDate: r.ProjectEndDate,
		Slack:          r.SlackByTask,
		HasCycle:       r.HasCycle,
	}
}

type scheduleOutput struct {
	Data  []taskOutput `json:"data"`
	Links []linkOutput `json:"links"`
}

type taskOutput struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	StartDate response.Date `json:"start_date"`
	EndDate   response.Date `json:"end_date"`
	Duration  int           `json:"duration"`
	Progress  float64       `json:"progress"`
	Parent    string        `json:"parent"`
	Type      string        `json:"type"`
}

type linkOutput struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

func newScheduleOutput(s gantt.Schedule) scheduleOutput {
	out := scheduleOutput{Data: []taskOutput{}, Links: []linkOutput{}}
	for _, t := range s.Tasks {
		out.Data = append(out.Data, taskOutput{
			ID:        t.ID,
			Text:      t.Label,
			StartDate: response.Date(t.StartDate),
			EndDate:   response.Date(t.EndDate),
			Duration:  t.Duration,
			Progress:  t.Progress,
			Parent:    t.ParentID,
			Type:      string(t.Kind),
		})
	}
	for _, l := range s.Links {
		out.Links = append(out.Links, linkOutput{ID: l.ID, Source: l.SourceID, Target: l.TargetID, Type: string(l.Kind)})
	}
	return out
}
