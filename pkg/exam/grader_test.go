package exam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomas-kadlec/gazelab/pkg/utility/fixed"
)

func sheetWithAnswers(answers ...string) Sheet {
	return Sheet{
		Surname:       "SMITH",
		FirstName:     "JOHN",
		StudentNumber: "12345678",
		Answers:       answers,
	}
}

func TestNewGrader_Validation(t *testing.T) {
	tests := []struct {
		name string
		key  []string
		opts []Option
	}{
		{
			name: "empty key",
			key:  nil,
		},
		{
			name: "zero item value",
			key:  []string{"A", "B"},
			opts: []Option{WithItemValue(0)},
		},
		{
			name: "negative threshold",
			key:  []string{"A", "B"},
			opts: []Option{WithIncorrectThreshold(-0.1)},
		},
		{
			name: "threshold above one",
			key:  []string{"A", "B"},
			opts: []Option{WithIncorrectThreshold(1.5)},
		},
		{
			name: "drop outside key range",
			key:  []string{"A", "B"},
			opts: []Option{WithDrops(3)},
		},
		{
			name: "all questions dropped",
			key:  []string{"A", "B"},
			opts: []Option{WithDrops(1, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrader(tt.key, tt.opts...)
			require.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestGrader_Grade(t *testing.T) {
	grader, err := NewGrader([]string{"A", "B", "D", "B", "C"})
	require.NoError(t, err)

	tests := []struct {
		name            string
		sheet           Sheet
		expectedPoints  int
		expectedPercent float64
	}{
		{
			name:            "perfect score",
			sheet:           sheetWithAnswers("A", "B", "D", "B", "C"),
			expectedPoints:  5,
			expectedPercent: 100,
		},
		{
			name:            "partial score",
			sheet:           sheetWithAnswers("A", "B", "A", "B", "E"),
			expectedPoints:  3,
			expectedPercent: 60,
		},
		{
			name:            "no correct answers",
			sheet:           sheetWithAnswers("B", "C", "A", "A", "E"),
			expectedPoints:  0,
			expectedPercent: 0,
		},
		{
			name:            "blank answers never match",
			sheet:           sheetWithAnswers(" ", " ", " ", " ", " "),
			expectedPoints:  0,
			expectedPercent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := grader.Grade(tt.sheet)
			assert.True(t, result.Points.Eq(fixed.FromInt(tt.expectedPoints, 0)),
				"points: expected %d, got %s", tt.expectedPoints, result.Points)
			assert.True(t, result.Percent.Eq(fixed.FromFloat64(tt.expectedPercent)),
				"percent: expected %v, got %s", tt.expectedPercent, result.Percent)
		})
	}
}

func TestGrader_DroppedQuestionsExcluded(t *testing.T) {
	grader, err := NewGrader([]string{"A", "B", "D", "B", "C"}, WithDrops(1, 3))
	require.NoError(t, err)

	assert.True(t, grader.TotalPoints().Eq(fixed.FromInt(3, 0)))

	// Correct answers on dropped questions earn nothing.
	result := grader.Grade(sheetWithAnswers("A", "B", "D", "B", "C"))
	assert.True(t, result.Points.Eq(fixed.FromInt(3, 0)), "points: got %s", result.Points)
	assert.True(t, result.Percent.Eq(fixed.Hundred), "percent: got %s", result.Percent)
}

func TestGrader_ItemValueScalesPoints(t *testing.T) {
	grader, err := NewGrader([]string{"A", "B", "C", "D"}, WithItemValue(2), WithDrops(4))
	require.NoError(t, err)

	assert.True(t, grader.TotalPoints().Eq(fixed.FromInt(6, 0)))

	result := grader.Grade(sheetWithAnswers("A", "B", "E", "D"))
	assert.True(t, result.Points.Eq(fixed.FromInt(4, 0)), "points: got %s", result.Points)
}

func TestGrader_ShortAnswerSliceTolerated(t *testing.T) {
	grader, err := NewGrader([]string{"A", "B", "C"})
	require.NoError(t, err)

	result := grader.Grade(sheetWithAnswers("A"))
	assert.True(t, result.Points.Eq(fixed.One), "points: got %s", result.Points)
}
