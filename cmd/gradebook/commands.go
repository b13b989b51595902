package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	appcmd "github.com/grade-hub/gradebook-hub/internal/application/command"
	"github.com/grade-hub/gradebook-hub/internal/application/query"
)

// loadRoster reads the roster file into the in-memory roster before a
// non-interactive command runs. An empty path falls back to the configured
// default data file.
func loadRoster(a *app, path string) error {
	_, err := a.handlers.Persist.HandleLoad(appcmd.LoadRosterCommand{Path: path})
	return err
}

// addFileFlag registers the roster file flag shared by every
// non-interactive command.
func addFileFlag(fs *pflag.FlagSet, file *string) {
	fs.StringVarP(file, "file", "f", "", "roster file (default: configured data file)")
}

func newReportCmd(a *app) *cobra.Command {
	var (
		strategyID string
		file       string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a roster report from a saved file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadRoster(a, file); err != nil {
				return err
			}

			out, err := a.handlers.GetReport.Handle(query.GetReportQuery{StrategyID: strategyID})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&strategyID, "strategy", "s", "text", "report strategy: text, average, chart")
	addFileFlag(cmd.Flags(), &file)
	return cmd
}

func newTopCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Display the top-scoring students from a saved file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadRoster(a, file); err != nil {
				return err
			}

			out, err := a.handlers.TopStudents.Handle(query.GetTopStudentsQuery{})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	addFileFlag(cmd.Flags(), &file)
	return cmd
}

func newVisitCmd(a *app) *cobra.Command {
	var (
		visitorID string
		file      string
	)

	cmd := &cobra.Command{
		Use:   "visit",
		Short: "Apply a per-student visitor across a saved roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadRoster(a, file); err != nil {
				return err
			}

			out, err := a.handlers.VisitStudents.Handle(query.VisitStudentsQuery{VisitorID: visitorID})
			if out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&visitorID, "visitor", "v", "average", "visitor: average, minmax")
	addFileFlag(cmd.Flags(), &file)
	return cmd
}
