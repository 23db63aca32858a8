package msr

// Element is a construct found inside a measure.
type Element interface {
	LineNumber() int

	accept(v Visitor) error
}

// Note is a pitched note or a rest.
type Note struct {
	Source

	// Rest is true for rests; Step and Octave are then meaningless.
	Rest bool

	Step DiatonicPitch

	// Octave is the scientific octave number, middle C is C4.
	Octave int

	Duration Duration
	Dots     int

	// Accidental is the displayed accidental, AccidentalNone if there is none.
	Accidental AccidentalKind

	// InChord is true for the second and following notes of a chord.
	InChord bool

	// Words are texts attached to the note (e.g. a direction placed on it).
	Words []string
}

// Clef is a clef change.
type Clef struct {
	Source
	Kind ClefKind
}

// Key is a key signature.
type Key struct {
	Source
	System     KeySystem
	Tonic      DiatonicPitch
	Alteration Alteration
	Mode       KeyMode
}

// TimeItem is one beats/beat-value pair of a (possibly compound) time signature.
type TimeItem struct {
	// Beats holds several values for additive signatures such as 3+2/8.
	Beats     []int
	BeatValue int
}

// Time is a time signature.
type Time struct {
	Source
	Symbol TimeSymbol
	Items  []TimeItem
}

// Barline is a barline with its MusicXML bar-style.
type Barline struct {
	Source
	Style BarlineStyle
}

// Dynamics is a dynamics marking such as "pp" or "sfz".
type Dynamics struct {
	Source
	Kind string
}

// Tempo is a tempo indication with optional words and metronome mark.
type Tempo struct {
	Source
	Words        string
	BeatUnit     Duration
	BeatUnitDots int
	PerMinute    int
}

// Words is a standalone text direction.
type Words struct {
	Source
	Text string
}

// LineBreak is an explicit system break requested by the score.
type LineBreak struct {
	Source
}

// PageBreak is an explicit page break requested by the score.
type PageBreak struct {
	Source
}

func (n *Note) accept(v Visitor) error      { return v.VisitNote(n) }
func (c *Clef) accept(v Visitor) error      { return v.VisitClef(c) }
func (k *Key) accept(v Visitor) error       { return v.VisitKey(k) }
func (t *Time) accept(v Visitor) error      { return v.VisitTime(t) }
func (b *Barline) accept(v Visitor) error   { return v.VisitBarline(b) }
func (d *Dynamics) accept(v Visitor) error  { return v.VisitDynamics(d) }
func (t *Tempo) accept(v Visitor) error     { return v.VisitTempo(t) }
func (w *Words) accept(v Visitor) error     { return v.VisitWords(w) }
func (b *LineBreak) accept(v Visitor) error { return v.VisitLineBreak(b) }
func (b *PageBreak) accept(v Visitor) error { return v.VisitPageBreak(b) }
