package exam

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tomas-kadlec/gazelab/pkg/utility"
)

const gradesSheet = "grades"

// WriteGradesWorkbook writes one row per student to a "grades" sheet:
// identity columns, earned points and percentage, then the raw answer
// given for each question.
func WriteGradesWorkbook(path string, results []Result, numQuestions int) error {
	f := excelize.NewFile()
	defer func(f *excelize.File) {
		_ = f.Close()
	}(f)

	index, err := f.NewSheet(gradesSheet)
	if err != nil {
		return fmt.Errorf("unable to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("unable to remove default sheet: %w", err)
	}

	header := []interface{}{"surname", "first_name", "student_number", "points", "percent"}
	for q := 1; q <= numQuestions; q++ {
		header = append(header, fmt.Sprintf("Q-%d", q))
	}
	if err := f.SetSheetRow(gradesSheet, "A1", &header); err != nil {
		return fmt.Errorf("unable to write header: %w", err)
	}

	for i, r := range results {
		points, _ := r.Points.Float64()
		percent, _ := r.Percent.Float64()

		row := []interface{}{r.Sheet.Surname, r.Sheet.FirstName, r.Sheet.StudentNumber, points, percent}
		for q := 0; q < numQuestions; q++ {
			answer := ""
			if q < len(r.Sheet.Answers) {
				answer = r.Sheet.Answers[q]
			}
			row = append(row, answer)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("unable to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(gradesSheet, cell, &row); err != nil {
			return fmt.Errorf("unable to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:     "gazelab",
		Description: fmt.Sprintf("run %s", utility.GetRunID()),
	}); err != nil {
		return fmt.Errorf("unable to stamp workbook: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("unable to save workbook %q: %w", path, err)
	}
	return nil
}

// WriteSummaryText writes the class summary in the plain layout the
// department circulates: descriptive statistics, dropped questions and
// the answer distribution of every problem item.
func WriteSummaryText(path string, summary Summary) error {
	var b strings.Builder

	b.WriteString("Descriptive Statistics: \n\n")
	fmt.Fprintf(&b, "N: %d\n", summary.N)
	fmt.Fprintf(&b, "Mean %%: %s%%\n", summary.MeanPercent.Rescale(2))
	fmt.Fprintf(&b, "Mean score (out of %s points): %s\n", summary.TotalPoints, summary.MeanPoints.Rescale(2))
	fmt.Fprintf(&b, "Score SD: %s\n", summary.PointsStdDev.Rescale(2))
	fmt.Fprintf(&b, "Range: %s (Min: %s, Max: %s)\n\n\n",
		summary.MaxPoints.Sub(summary.MinPoints), summary.MinPoints, summary.MaxPoints)

	if len(summary.Dropped) > 0 {
		dropped := make([]string, len(summary.Dropped))
		for i, q := range summary.Dropped {
			dropped[i] = fmt.Sprintf("%d", q)
		}
		fmt.Fprintf(&b, "Dropped questions: %s\n\n\n", strings.Join(dropped, ", "))
	}

	fmt.Fprintf(&b, "Problem Items (questions that less than %g%% of students got correct):\n\n",
		summary.IncorrectThreshold*100)

	if len(summary.ProblemItems) == 0 {
		b.WriteString("None")
	} else {
		for _, item := range summary.ProblemItems {
			fmt.Fprintf(&b, "Q-%d (A: %d, B: %d, C: %d, D: %d, E: %d)\n",
				item.Question,
				item.Distribution["A"], item.Distribution["B"], item.Distribution["C"],
				item.Distribution["D"], item.Distribution["E"])
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("unable to save summary %q: %w", path, err)
	}
	return nil
}
