package exam

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedSheet = errors.New("malformed sheet")

// Sheet is one student's scanned answer sheet. Answers holds one
// single-character choice per question, in question order; a blank
// answer stays blank.
type Sheet struct {
	Surname       string
	FirstName     string
	StudentNumber string
	Answers       []string
}

// ParseSheet splits one line of a scantron dump according to the
// machine layout. The line must be long enough to cover all expected
// answers, otherwise the student skipped the end of the sheet or the
// dump is from a different machine.
func ParseSheet(line string, layout Layout, numQuestions int) (Sheet, error) {
	if numQuestions <= 0 {
		return Sheet{}, fmt.Errorf("%w: question count %d must be positive", ErrMalformedSheet, numQuestions)
	}
	if len(line) < layout.AnswersStart+numQuestions {
		return Sheet{}, fmt.Errorf("%w: line has %d characters, need %d",
			ErrMalformedSheet, len(line), layout.AnswersStart+numQuestions)
	}

	answers := make([]string, numQuestions)
	for i := range answers {
		answers[i] = line[layout.AnswersStart+i : layout.AnswersStart+i+1]
	}

	return Sheet{
		Surname:       strings.TrimSpace(line[layout.Surname[0]:layout.Surname[1]]),
		FirstName:     strings.TrimSpace(line[layout.FirstName[0]:layout.FirstName[1]]),
		StudentNumber: strings.TrimSpace(line[layout.StudentNumber[0]:layout.StudentNumber[1]]),
		Answers:       answers,
	}, nil
}
