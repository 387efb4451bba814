// Package cli implements the cpm command-line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the cpm command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpm",
		Short: "Offline critical path analysis of project files",
		Long: `cpm runs the same schedule builder and critical path method as the API
over a project hierarchy described in a YAML file.

Examples:
  cpm analyze project.yaml               # critical path as a table
  cpm analyze project.yaml --format json # critical path as JSON
  cpm schedule project.yaml              # tasks and links as JSON`,
		SilenceUsage: true,
	}

	root.AddCommand(newAnalyzeCmd(), newScheduleCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
