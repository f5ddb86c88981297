package exam

import (
	"errors"
	"fmt"

	"github.com/tomas-kadlec/gazelab/pkg/utility/fixed"
)

// Choices are the recognized answer options on a 5-option multiple
// choice sheet.
const Choices = "ABCDE"

var ErrInvalidKey = errors.New("invalid answer key")

// Result is one student's graded sheet.
type Result struct {
	Sheet   Sheet
	Points  fixed.Point
	Percent fixed.Point
}

// Grader scores sheets against a fixed answer key. Dropped questions
// are excluded from both earned and available points, matching how the
// department hand-corrects a bad item after the exam.
type Grader struct {
	key                []string
	drops              map[int]bool
	itemValue          int
	incorrectThreshold float64
}

type Option func(*Grader)

// WithDrops excludes the given 1-based question numbers from scoring.
func WithDrops(drops ...int) Option {
	return func(g *Grader) {
		for _, q := range drops {
			g.drops[q] = true
		}
	}
}

// WithItemValue sets how many points each question is worth.
func WithItemValue(value int) Option {
	return func(g *Grader) {
		g.itemValue = value
	}
}

// WithIncorrectThreshold sets the proportion of correct answers below
// which a question is flagged as a problem item.
func WithIncorrectThreshold(threshold float64) Option {
	return func(g *Grader) {
		g.incorrectThreshold = threshold
	}
}

func NewGrader(key []string, opts ...Option) (*Grader, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}

	g := &Grader{
		key:                key,
		drops:              make(map[int]bool),
		itemValue:          1,
		incorrectThreshold: 0.5,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.itemValue <= 0 {
		return nil, fmt.Errorf("%w: item value %d must be positive", ErrInvalidKey, g.itemValue)
	}
	if g.incorrectThreshold < 0 || g.incorrectThreshold > 1 {
		return nil, fmt.Errorf("%w: incorrect threshold %v outside [0, 1]", ErrInvalidKey, g.incorrectThreshold)
	}
	for q := range g.drops {
		if q < 1 || q > len(key) {
			return nil, fmt.Errorf("%w: dropped question %d outside 1..%d", ErrInvalidKey, q, len(key))
		}
	}
	if len(g.drops) == len(key) {
		return nil, fmt.Errorf("%w: all %d questions dropped", ErrInvalidKey, len(key))
	}

	return g, nil
}

func (g *Grader) NumQuestions() int {
	return len(g.key)
}

// TotalPoints is the number of points available on the exam after
// dropped questions are removed.
func (g *Grader) TotalPoints() fixed.Point {
	return fixed.FromInt(len(g.key)*g.itemValue-len(g.drops)*g.itemValue, 0)
}

// Grade scores one sheet. A question counts only when it is not
// dropped and the answer matches the key exactly.
func (g *Grader) Grade(sheet Sheet) Result {
	points := 0
	for i, answer := range sheet.Answers {
		if i >= len(g.key) {
			break
		}
		if g.drops[i+1] {
			continue
		}
		if answer == g.key[i] {
			points += g.itemValue
		}
	}

	earned := fixed.FromInt(points, 0)
	return Result{
		Sheet:   sheet,
		Points:  earned,
		Percent: earned.Div(g.TotalPoints()).Mul(fixed.Hundred),
	}
}
