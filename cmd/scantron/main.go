package main

import (
	"flag"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tomas-kadlec/gazelab/internal/dbg"
	"github.com/tomas-kadlec/gazelab/pkg/exam"
)

func main() {
	input := flag.String("input", "", "scantron text dump")
	key := flag.String("key", "", "correct answers in question order, e.g. ABDBC")
	drops := flag.String("drops", "", "comma separated question numbers to drop, e.g. 1,5")
	itemValue := flag.Int("value", DefaultItemValue, "points per question")
	threshold := flag.Float64("threshold", DefaultIncorrectThreshold, "problem item threshold in [0, 1]")
	flag.Parse()

	logger := dbg.NewDevLogger()
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	if *input == "" || *key == "" {
		logger.Fatal("-input and -key are required")
	}

	dropped, err := parseDrops(*drops)
	if err != nil {
		logger.Fatal("error parsing drops", zap.Error(err))
	}

	grader, err := exam.NewGrader(splitKey(*key),
		exam.WithDrops(dropped...),
		exam.WithItemValue(*itemValue),
		exam.WithIncorrectThreshold(*threshold))
	if err != nil {
		logger.Fatal("error building grader", zap.Error(err))
	}

	compiler := exam.NewCompiler(logger, exam.DefaultLayout, grader)
	results, summary, err := compiler.CompileFile(*input)
	if err != nil {
		logger.Fatal("error compiling scantron dump", zap.Error(err))
	}

	base := strings.TrimSuffix(*input, filepath.Ext(*input))
	gradesPath := base + "_grades.xlsx"
	summaryPath := base + "_summary.txt"

	if err := exam.WriteGradesWorkbook(gradesPath, results, grader.NumQuestions()); err != nil {
		logger.Fatal("error writing grades workbook", zap.Error(err))
	}
	if err := exam.WriteSummaryText(summaryPath, summary); err != nil {
		logger.Fatal("error writing summary", zap.Error(err))
	}

	summary.Print()
	logger.Info("reports written",
		zap.String("grades", gradesPath),
		zap.String("summary", summaryPath))
}

func splitKey(key string) []string {
	answers := make([]string, 0, len(key))
	for _, c := range strings.ToUpper(key) {
		answers = append(answers, string(c))
	}
	return answers
}

func parseDrops(drops string) ([]int, error) {
	if drops == "" {
		return nil, nil
	}
	parts := strings.Split(drops, ",")
	parsed := make([]int, 0, len(parts))
	for _, part := range parts {
		q, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, q)
	}
	return parsed, nil
}
