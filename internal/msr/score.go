package msr

// Source records where a construct came from in the input document.
type Source struct {
	InputLine int
}

// LineNumber returns the input line number, 0 when unknown.
func (s Source) LineNumber() int {
	return s.InputLine
}

// Score is the root of the score model.
type Score struct {
	Source

	// WorkTitle is the title of the work, empty when absent.
	WorkTitle string

	PartGroups []*PartGroup
}

// PartGroup groups parts, e.g. the two staves of a piano brace.
type PartGroup struct {
	Source
	Name  string
	Parts []*Part
}

// Part is one instrument or voice part.
type Part struct {
	Source
	ID     string
	Name   string
	Staves []*Staff
}

// Staff is one staff of a part.
type Staff struct {
	Source
	Number int
	Voices []*Voice
}

// Voice is one voice on a staff.
type Voice struct {
	Source
	Number   int
	Measures []*Measure
}

// Measure holds the elements of one measure of a voice, in document order.
type Measure struct {
	Source

	// Number is the source measure number. It is not necessarily numeric
	// ("12a", "X1" are valid).
	Number string

	Elements []Element
}

// NumberOfMeasures counts the measures of every voice in the score.
func (s *Score) NumberOfMeasures() int {
	n := 0
	for _, g := range s.PartGroups {
		for _, p := range g.Parts {
			for _, st := range p.Staves {
				for _, v := range st.Voices {
					n += len(v.Measures)
				}
			}
		}
	}
	return n
}
