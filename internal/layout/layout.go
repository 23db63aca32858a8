package layout

import "fmt"

// Action is what the translator must do before placing the next item.
type Action int

const (
	// Continue keeps writing to the current line.
	Continue Action = iota
	// NewLine closes the current line and opens the next one on the same page.
	NewLine
	// NewPage closes the current page and opens a fresh one with its first line.
	NewPage
)

func (a Action) String() string {
	switch a {
	case Continue:
		return "continue"
	case NewLine:
		return "new line"
	case NewPage:
		return "new page"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Capacities are the page geometry; all values must be positive.
type Capacities struct {
	CellsPerLine    int
	MeasuresPerLine int
	LinesPerPage    int
}

// Validate rejects non-positive capacities.
func (c Capacities) Validate() error {
	if c.CellsPerLine <= 0 {
		return fmt.Errorf("cells per line must be positive, got %d", c.CellsPerLine)
	}
	if c.MeasuresPerLine <= 0 {
		return fmt.Errorf("measures per line must be positive, got %d", c.MeasuresPerLine)
	}
	if c.LinesPerPage <= 0 {
		return fmt.Errorf("lines per page must be positive, got %d", c.LinesPerPage)
	}
	return nil
}

// Fill describes the current page and line.
type Fill struct {
	// LinesOnPage counts the lines of the current page, the current one included.
	LinesOnPage int
	// MeasuresOnLine counts the measures already on the current line.
	MeasuresOnLine int
	// LineEmpty is true when the current line holds no element at all.
	LineEmpty bool
	// PageEmpty is true when the current page holds only an empty line.
	PageEmpty bool
}

// Policy applies Capacities to a Fill.
type Policy struct {
	Capacities Capacities
}

// New returns a policy for the given capacities.
func New(c Capacities) *Policy {
	return &Policy{Capacities: c}
}

// BeforeMeasure is consulted before a measure is opened.
func (p *Policy) BeforeMeasure(f Fill) Action {
	if f.MeasuresOnLine < p.Capacities.MeasuresPerLine {
		return Continue
	}
	return p.nextLine(f)
}

// OnLineBreak handles a line break found in the score. An empty line
// absorbs the break.
func (p *Policy) OnLineBreak(f Fill) Action {
	if f.LineEmpty {
		return Continue
	}
	return p.nextLine(f)
}

// OnPageBreak handles a page break found in the score. An empty page
// absorbs the break.
func (p *Policy) OnPageBreak(f Fill) Action {
	if f.PageEmpty {
		return Continue
	}
	return NewPage
}

func (p *Policy) nextLine(f Fill) Action {
	if f.LinesOnPage >= p.Capacities.LinesPerPage {
		return NewPage
	}
	return NewLine
}
