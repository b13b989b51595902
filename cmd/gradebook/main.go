// Command gradebook manages a roster of students and their grades.
// The interactive menu is the canonical interface; report, top and visit
// subcommands cover non-interactive use against a saved roster file.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grade-hub/gradebook-hub/config"
	"github.com/grade-hub/gradebook-hub/internal/application/command"
	"github.com/grade-hub/gradebook-hub/internal/application/query"
	"github.com/grade-hub/gradebook-hub/internal/domain/roster"
	"github.com/grade-hub/gradebook-hub/internal/infrastructure/messaging"
	"github.com/grade-hub/gradebook-hub/internal/infrastructure/persistence/flatfile"
	"github.com/grade-hub/gradebook-hub/internal/interface/cli"
	"github.com/grade-hub/gradebook-hub/pkg/logger"
)

// app bundles the wired core for the CLI commands.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	roster  *roster.Roster
	channel *messaging.GradeChannel

	handlers cli.Handlers
}

// newApp wires the core: notification channel, flat-file codec, roster, and
// the command/query handlers around it.
func newApp(cfg *config.Config, log zerolog.Logger) *app {
	channel := messaging.NewGradeChannel(log)
	codec := flatfile.NewCodec(log)
	r := roster.New(channel, codec)

	return &app{
		cfg:     cfg,
		log:     log,
		roster:  r,
		channel: channel,
		handlers: cli.Handlers{
			RegisterStudent: command.NewRegisterStudentHandler(r, log),
			RecordGrade:     command.NewRecordGradeHandler(r, log),
			Persist:         command.NewPersistRosterHandler(r, cfg.Storage.DataFile, log),
			GetReport:       query.NewGetReportHandler(r, cfg.Marker(), log),
			TopStudents:     query.NewGetTopStudentsHandler(r, cfg.Report.TopGroupLabel, log),
			VisitStudents:   query.NewVisitStudentsHandler(r, log),
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Observability.LogLevel
	if cfg.App.Debug {
		level = "debug"
	}
	log := logger.New(logger.Options{
		Level:  level,
		Format: cfg.Observability.LogFormat,
		Output: os.Stderr,
	})

	application := newApp(cfg, log)

	rootCmd := &cobra.Command{
		Use:     "gradebook",
		Short:   "Student roster and grade management",
		Version: cfg.App.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			menu := cli.NewMenu(os.Stdin, os.Stdout, application.handlers, application.channel, log)
			return menu.Run()
		},
	}

	rootCmd.AddCommand(
		newReportCmd(application),
		newTopCmd(application),
		newVisitCmd(application),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
