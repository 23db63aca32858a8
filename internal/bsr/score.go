package bsr

import "fmt"

// Score is the root of the braille model.
type Score struct {
	TranscriptionNotes []*TranscriptionNote
	Pages              []*Page
}

// TranscriptionNote records how the braille was produced.
type TranscriptionNote struct {
	Text string
}

// AddTranscriptionNote appends a transcription note.
func (s *Score) AddTranscriptionNote(text string) {
	s.TranscriptionNotes = append(s.TranscriptionNotes, &TranscriptionNote{Text: text})
}

// NewPage appends and returns a new page numbered after the last one.
func (s *Score) NewPage(linesCapacity int) *Page {
	p := &Page{Number: len(s.Pages) + 1, LinesCapacity: linesCapacity}
	s.Pages = append(s.Pages, p)
	return p
}

// LastPage returns the last page, or nil for an empty score.
func (s *Score) LastPage() *Page {
	if len(s.Pages) == 0 {
		return nil
	}
	return s.Pages[len(s.Pages)-1]
}

// NumberOfLines counts the lines over all pages.
func (s *Score) NumberOfLines() int {
	n := 0
	for _, p := range s.Pages {
		n += len(p.Lines)
	}
	return n
}

// NumberOfMeasures counts the measures over all pages.
func (s *Score) NumberOfMeasures() int {
	n := 0
	for _, p := range s.Pages {
		for _, l := range p.Lines {
			n += l.MeasuresCount()
		}
	}
	return n
}

// PageHeading is the title block of the first page.
type PageHeading struct {
	Title      string
	PageNumber int
}

func (h *PageHeading) Cells() Cells {
	cs := Text(h.Title)
	if h.PageNumber > 0 {
		cs = Concat(cs, Cells{CellSpace}, Number(h.PageNumber))
	}
	return cs
}

// MusicHeading gathers the initial tempo, key, time and clef.
type MusicHeading struct {
	Tempo *Tempo
	Key   *Key
	Time  *Time
	Clef  *Clef
}

// Empty reports whether no heading sign has been set.
func (h *MusicHeading) Empty() bool {
	return h.Tempo == nil && h.Key == nil && h.Time == nil && h.Clef == nil
}

// Cells writes tempo, then key and time together, then clef, separated by spaces.
func (h *MusicHeading) Cells() Cells {
	var groups []Cells
	if h.Tempo != nil {
		groups = append(groups, h.Tempo.Cells())
	}
	var keyTime Cells
	if h.Key != nil {
		keyTime = append(keyTime, h.Key.Cells()...)
	}
	if h.Time != nil {
		keyTime = append(keyTime, h.Time.Cells()...)
	}
	if len(keyTime) > 0 {
		groups = append(groups, keyTime)
	}
	if h.Clef != nil {
		groups = append(groups, h.Clef.Cells())
	}
	return joinCells(groups)
}

// Page holds lines up to LinesCapacity.
type Page struct {
	Number        int
	LinesCapacity int
	Heading       *PageHeading
	MusicHeading  *MusicHeading
	Lines         []*Line
}

// NewLine appends and returns a new line numbered after the last one on the page.
func (p *Page) NewLine(cellsCapacity int) *Line {
	l := &Line{Number: len(p.Lines) + 1, CellsCapacity: cellsCapacity}
	p.Lines = append(p.Lines, l)
	return l
}

// LastLine returns the last line, or nil for an empty page.
func (p *Page) LastLine() *Line {
	if len(p.Lines) == 0 {
		return nil
	}
	return p.Lines[len(p.Lines)-1]
}

// LineElement is a measure or a standalone sign placed directly in a line.
type LineElement interface {
	Cells() Cells
}

// Line is a braille line; CellsCapacity is the target width.
type Line struct {
	Number        int
	CellsCapacity int
	Elements      []LineElement
}

// NewMeasure appends and returns a new measure.
func (l *Line) NewMeasure(number string) *Measure {
	m := &Measure{Number: number}
	l.Elements = append(l.Elements, m)
	return m
}

// Append adds an element at the end of the line.
func (l *Line) Append(e LineElement) {
	l.Elements = append(l.Elements, e)
}

// InsertBeforeLast places e just before the last element, or appends it
// when the line is empty.
func (l *Line) InsertBeforeLast(e LineElement) {
	n := len(l.Elements)
	if n == 0 {
		l.Elements = append(l.Elements, e)
		return
	}
	l.Elements = append(l.Elements, nil)
	copy(l.Elements[n:], l.Elements[n-1:n])
	l.Elements[n-1] = e
}

// Empty reports whether the line has no elements.
func (l *Line) Empty() bool { return len(l.Elements) == 0 }

// Measures returns the measures of the line in order.
func (l *Line) Measures() []*Measure {
	var ms []*Measure
	for _, e := range l.Elements {
		if m, ok := e.(*Measure); ok {
			ms = append(ms, m)
		}
	}
	return ms
}

// MeasuresCount returns the number of measures in the line.
func (l *Line) MeasuresCount() int {
	n := 0
	for _, e := range l.Elements {
		if _, ok := e.(*Measure); ok {
			n++
		}
	}
	return n
}

// LastMeasure returns the last measure of the line, or nil.
func (l *Line) LastMeasure() *Measure {
	for i := len(l.Elements) - 1; i >= 0; i-- {
		if m, ok := l.Elements[i].(*Measure); ok {
			return m
		}
	}
	return nil
}

// Cells renders the elements separated by a space.
func (l *Line) Cells() Cells {
	groups := make([]Cells, 0, len(l.Elements))
	for _, e := range l.Elements {
		groups = append(groups, e.Cells())
	}
	return joinCells(groups)
}

// Overflow reports how many cells the line exceeds its capacity by, or 0.
func (l *Line) Overflow() int {
	if l.CellsCapacity <= 0 {
		return 0
	}
	if over := len(l.Cells()) - l.CellsCapacity; over > 0 {
		return over
	}
	return 0
}

// Measure is a sequence of signs.
type Measure struct {
	Number string
	Signs  []Sign
}

// Append adds a sign at the end of the measure.
func (m *Measure) Append(s Sign) {
	m.Signs = append(m.Signs, s)
}

// Cells concatenates the signs; a measure is written without inner spaces.
func (m *Measure) Cells() Cells {
	var cs Cells
	for _, s := range m.Signs {
		cs = append(cs, s.Cells()...)
	}
	return cs
}

func (m *Measure) String() string {
	return fmt.Sprintf("Measure %s (%d signs)", m.Number, len(m.Signs))
}

func joinCells(groups []Cells) Cells {
	var cs Cells
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		if len(cs) > 0 {
			cs = append(cs, CellSpace)
		}
		cs = append(cs, g...)
	}
	return cs
}
