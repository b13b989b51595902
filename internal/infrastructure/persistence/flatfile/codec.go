// Package flatfile implements the roster persistence codec: one student per
// line, fields comma-separated, no escaping of embedded commas. The missing
// escaping is a known limitation of the format, preserved deliberately.
package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/grade-hub/gradebook-hub/internal/domain/student"
)

// fieldSeparator separates identity and grade fields on a line.
const fieldSeparator = ","

// Codec encodes and decodes a roster to the flat text form
//
//	<firstName>,<lastName>,<grade1>,...,<gradeN>
//
// Implements roster.Codec.
type Codec struct {
	log zerolog.Logger
}

// NewCodec creates a codec.
func NewCodec(log zerolog.Logger) *Codec {
	return &Codec{log: log}
}

// Save writes one line per student in roster order. A student with zero
// grades writes a line with only the two identity fields. The file handle
// is released before Save returns, on every exit path.
func (c *Codec) Save(path string, students []*student.Student) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, s := range students {
		fields := make([]string, 0, len(s.Grades)+2)
		fields = append(fields, s.FirstName, s.LastName)
		for _, g := range s.Grades {
			fields = append(fields, strconv.Itoa(g))
		}
		if _, err := w.WriteString(strings.Join(fields, fieldSeparator) + "\n"); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	c.log.Debug().Str("path", path).Int("students", len(students)).Msg("roster saved")
	return nil
}

// Load reads the file and decodes one student per non-empty line. The first
// two fields become identity; every subsequent field parses as an integer
// grade. Malformed input is not an error: a field that fails to parse is
// skipped, and so is a line with fewer than two fields.
func (c *Codec) Load(path string) ([]*student.Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	students := make([]*student.Student, 0)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, fieldSeparator)
		if len(fields) < 2 {
			c.log.Debug().Str("line", line).Msg("skipping line with fewer than two fields")
			continue
		}

		s := student.New(fields[0], fields[1])
		for _, field := range fields[2:] {
			grade, err := strconv.Atoi(field)
			if err != nil {
				c.log.Debug().Str("field", field).Str("student", s.FullName()).
					Msg("skipping unparsable grade field")
				continue
			}
			s.RecordGrade(grade)
		}
		students = append(students, s)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	c.log.Debug().Str("path", path).Int("students", len(students)).Msg("roster loaded")
	return students, nil
}
