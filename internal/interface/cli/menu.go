// Package cli is the interactive shell around the gradebook core. It owns
// prompting, parsing raw text into typed commands and queries, and printing
// returned text and errors. It holds no roster state of its own.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/grade-hub/gradebook-hub/internal/application/command"
	"github.com/grade-hub/gradebook-hub/internal/application/query"
	"github.com/grade-hub/gradebook-hub/internal/domain/report"
	"github.com/grade-hub/gradebook-hub/internal/domain/visitor"
	"github.com/grade-hub/gradebook-hub/internal/infrastructure/messaging"
)

// Handlers bundles the core operations the menu dispatches to.
type Handlers struct {
	RegisterStudent *command.RegisterStudentHandler
	RecordGrade     *command.RecordGradeHandler
	Persist         *command.PersistRosterHandler
	GetReport       *query.GetReportHandler
	TopStudents     *query.GetTopStudentsHandler
	VisitStudents   *query.VisitStudentsHandler
}

// Menu is the interactive read-eval loop.
type Menu struct {
	in  *bufio.Reader
	out io.Writer
	log zerolog.Logger

	handlers Handlers

	// The menu owns the console listener's registration so the user can
	// toggle grade notifications on and off.
	channel   *messaging.GradeChannel
	console   *messaging.ConsoleListener
	notifying bool
}

// NewMenu creates the menu. The console listener starts registered.
func NewMenu(in io.Reader, out io.Writer, handlers Handlers, channel *messaging.GradeChannel, log zerolog.Logger) *Menu {
	m := &Menu{
		in:       bufio.NewReader(in),
		out:      out,
		log:      log,
		handlers: handlers,
		channel:  channel,
		console:  messaging.NewConsoleListener(out),
	}
	m.channel.Register(m.console)
	m.notifying = true
	return m
}

// Run starts the interactive menu loop and blocks until the user exits or
// input is exhausted.
func (m *Menu) Run() error {
	m.log.Info().Msg("starting interactive menu")

	for {
		m.printMenu()

		choice, err := m.readLine("Enter your choice: ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read choice: %w", err)
		}

		if choice == "0" {
			fmt.Fprintln(m.out, "Bye!")
			return nil
		}

		if err := m.dispatch(choice); err != nil {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintf(m.out, `
══════════ GRADEBOOK ══════════
 1. Add student
 2. Add grade
 3. Report: all grades
 4. Report: averages
 5. Report: chart
 6. Visit: averages
 7. Visit: min/max
 8. Top students
 9. Save roster
10. Load roster
11. Toggle notifications (%s)
 0. Exit
═══════════════════════════════
`, m.notifyState())
}

func (m *Menu) notifyState() string {
	if m.notifying {
		return "on"
	}
	return "off"
}

func (m *Menu) dispatch(choice string) error {
	switch choice {
	case "1":
		return m.addStudent()
	case "2":
		return m.addGrade()
	case "3":
		return m.showReport(report.StrategyText)
	case "4":
		return m.showReport(report.StrategyAverage)
	case "5":
		return m.showReport(report.StrategyChart)
	case "6":
		return m.runVisitor(visitor.VisitorAverage)
	case "7":
		return m.runVisitor(visitor.VisitorMinMax)
	case "8":
		return m.showTopStudents()
	case "9":
		return m.saveRoster()
	case "10":
		return m.loadRoster()
	case "11":
		m.toggleNotifications()
		return nil
	default:
		return fmt.Errorf("unknown choice %q", choice)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// MENU ACTIONS
// ─────────────────────────────────────────────────────────────────────────────

func (m *Menu) addStudent() error {
	first, last, err := m.readName()
	if err != nil {
		return err
	}

	s := m.handlers.RegisterStudent.Handle(command.RegisterStudentCommand{
		FirstName: first,
		LastName:  last,
	})
	fmt.Fprintf(m.out, "Added %s\n", s.FullName())
	return nil
}

func (m *Menu) addGrade() error {
	first, last, err := m.readName()
	if err != nil {
		return err
	}

	grade, err := m.readInt("Grade: ")
	if err != nil {
		return err
	}

	return m.handlers.RecordGrade.Handle(command.RecordGradeCommand{
		FirstName: first,
		LastName:  last,
		Grade:     grade,
	})
}

func (m *Menu) showReport(strategyID string) error {
	out, err := m.handlers.GetReport.Handle(query.GetReportQuery{StrategyID: strategyID})
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, out)
	return nil
}

func (m *Menu) runVisitor(visitorID string) error {
	out, err := m.handlers.VisitStudents.Handle(query.VisitStudentsQuery{VisitorID: visitorID})
	if out != "" {
		fmt.Fprintln(m.out, out)
	}
	return err
}

func (m *Menu) showTopStudents() error {
	out, err := m.handlers.TopStudents.Handle(query.GetTopStudentsQuery{})
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, out)
	return nil
}

func (m *Menu) saveRoster() error {
	path, err := m.readLine("File path (empty for default): ")
	if err != nil {
		return err
	}
	written, err := m.handlers.Persist.HandleSave(command.SaveRosterCommand{Path: path})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Saved to %s\n", written)
	return nil
}

func (m *Menu) loadRoster() error {
	path, err := m.readLine("File path (empty for default): ")
	if err != nil {
		return err
	}
	read, err := m.handlers.Persist.HandleLoad(command.LoadRosterCommand{Path: path})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Loaded from %s\n", read)
	return nil
}

func (m *Menu) toggleNotifications() {
	if m.notifying {
		m.channel.Unregister(m.console)
		m.notifying = false
		fmt.Fprintln(m.out, "Notifications off")
		return
	}
	m.channel.Register(m.console)
	m.notifying = true
	fmt.Fprintln(m.out, "Notifications on")
}

// ─────────────────────────────────────────────────────────────────────────────
// INPUT HELPERS
// ─────────────────────────────────────────────────────────────────────────────

func (m *Menu) readName() (first, last string, err error) {
	first, err = m.readLine("First name: ")
	if err != nil {
		return "", "", err
	}
	last, err = m.readLine("Last name: ")
	if err != nil {
		return "", "", err
	}
	return first, last, nil
}

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)

	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) readInt(prompt string) (int, error) {
	raw, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", raw)
	}
	return n, nil
}
