package exam

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Compiler turns a raw scantron dump into graded results and a class
// summary. The dump is expected to have been inspected by hand first;
// the compiler does not correct for students misfilling their sheets.
type Compiler struct {
	logger *zap.Logger
	layout Layout
	grader *Grader
}

func NewCompiler(logger *zap.Logger, layout Layout, grader *Grader) *Compiler {
	return &Compiler{
		logger: logger,
		layout: layout,
		grader: grader,
	}
}

func (c *Compiler) Compile(r io.Reader) ([]Result, Summary, error) {
	var results []Result

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		sheet, err := ParseSheet(text, c.layout, c.grader.NumQuestions())
		if err != nil {
			return nil, Summary{}, fmt.Errorf("line %d: %w", line, err)
		}

		result := c.grader.Grade(sheet)
		c.logger.Debug("graded sheet",
			zap.String("student_number", sheet.StudentNumber),
			zap.String("points", result.Points.String()),
			zap.String("percent", result.Percent.Rescale(2).String()))

		results = append(results, result)
	}
	if err := scanner.Err(); err != nil {
		return nil, Summary{}, fmt.Errorf("reading scantron dump: %w", err)
	}

	summary := c.grader.Summarize(results)
	c.logger.Info("compiled scantron dump",
		zap.Int("students", summary.N),
		zap.Int("problem_items", len(summary.ProblemItems)))

	return results, summary, nil
}

func (c *Compiler) CompileFile(path string) ([]Result, Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("unable to open scantron dump %q: %w", path, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	return c.Compile(f)
}
