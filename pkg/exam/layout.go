package exam

// Layout describes where the scantron machine places each field in a
// line of its text dump. Spans are half-open byte ranges. Offsets are
// machine specific and must be adjusted when the dump comes from a
// different machine.
type Layout struct {
	Surname       [2]int
	FirstName     [2]int
	StudentNumber [2]int
	AnswersStart  int
}

// DefaultLayout matches the scantron machine used in the UBC Psychology
// department.
var DefaultLayout = Layout{
	Surname:       [2]int{0, 12},
	FirstName:     [2]int{12, 21},
	StudentNumber: [2]int{21, 30},
	AnswersStart:  30,
}
