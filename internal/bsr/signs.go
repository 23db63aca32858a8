package bsr

import (
	"fmt"
	"strings"
)

// Sign is anything that renders as braille cells inside a line or measure.
type Sign interface {
	Cells() Cells
	String() string
}

// Note is a braille note or rest.
type Note struct {
	Value NoteValue
	Dots  int

	// Octave is OctaveNone for rests.
	Octave           OctaveKind
	OctaveMarkNeeded bool

	Accidental AccidentalKind

	// ValueSizeSignNeeded is set when the note moves to the other value
	// range (larger or smaller) than the previous note written.
	ValueSizeSignNeeded bool

	InputLine int
}

// Cells writes, in order: value-size sign, accidental, octave mark, value, dots.
func (n *Note) Cells() Cells {
	var cs Cells
	if n.ValueSizeSignNeeded {
		if n.Value.Duration.Smaller() {
			cs = append(cs, smallerValue...)
		} else {
			cs = append(cs, largerValues...)
		}
	}
	cs = append(cs, n.Accidental.Cells()...)
	if n.OctaveMarkNeeded && n.Octave != OctaveNone {
		cs = append(cs, n.Octave.Cells()...)
	}
	cs = append(cs, n.Value.Cells()...)
	for i := 0; i < n.Dots; i++ {
		cs = append(cs, cellMusicDot)
	}
	return cs
}

func (n *Note) String() string {
	var sb strings.Builder
	sb.WriteString("Note ")
	sb.WriteString(n.Value.String())
	if n.Dots > 0 {
		fmt.Fprintf(&sb, " dots:%d", n.Dots)
	}
	if n.Value.Step != StepRest {
		fmt.Fprintf(&sb, " %s", n.Octave)
	}
	if n.OctaveMarkNeeded {
		sb.WriteString(" mark")
	}
	if n.Accidental != AccidentalNone {
		fmt.Fprintf(&sb, " %s", n.Accidental)
	}
	return sb.String()
}

// Clef is a braille clef sign.
type Clef struct {
	Kind      ClefKind
	InputLine int
}

func (c *Clef) Cells() Cells   { return c.Kind.Cells() }
func (c *Clef) String() string { return "Clef " + c.Kind.String() }

// Key is a braille key signature: Count repetitions of one accidental.
type Key struct {
	Kind      KeyKind
	Count     int
	InputLine int
}

// Cells writes up to three accidentals literally; from four on the count
// is given as a number followed by a single accidental.
func (k *Key) Cells() Cells {
	if k.Count <= 0 {
		return nil
	}
	sign := k.Kind.cell()
	if k.Count <= 3 {
		cs := make(Cells, k.Count)
		for i := range cs {
			cs[i] = sign
		}
		return cs
	}
	return Concat(Number(k.Count), Cells{sign})
}

func (k *Key) String() string { return fmt.Sprintf("Key %d %s", k.Count, k.Kind) }

// TimeItem is one beats/beat-value group of a time signature.
type TimeItem struct {
	Beats     []int
	BeatValue int
}

// Time is a braille time signature.
type Time struct {
	Kind      TimeKind
	Items     []TimeItem
	InputLine int
}

func (t *Time) Cells() Cells {
	switch t.Kind {
	case TimeCommon:
		return Cells{Dots(4, 6), Dots(1, 4)}
	case TimeCut:
		return Cells{Dots(4, 5, 6), Dots(1, 4)}
	case TimeSenzaMisura:
		return Concat(Cells{cellWordSign}, Text("senza misura"))
	case TimeSingleNumber:
		if len(t.Items) == 0 {
			return nil
		}
		return Concat(Cells{cellNumberSign}, t.upperBeats(t.Items[0]))
	case TimeNumerical:
		var cs Cells
		for _, item := range t.Items {
			cs = append(cs, cellNumberSign)
			cs = append(cs, t.upperBeats(item)...)
			cs = append(cs, LowerNumber(item.BeatValue)...)
		}
		return cs
	case TimeNote, TimeDottedNote:
		if len(t.Items) == 0 {
			return nil
		}
		item := t.Items[0]
		cs := Concat(Cells{cellNumberSign}, t.upperBeats(item))
		if d, ok := durationForBeatValue(item.BeatValue); ok {
			cs = append(cs, NoteValue{Step: StepC, Duration: d}.Cells()...)
		}
		if t.Kind == TimeDottedNote {
			cs = append(cs, cellMusicDot)
		}
		return cs
	default:
		return nil
	}
}

func (t *Time) upperBeats(item TimeItem) Cells {
	var cs Cells
	for i, b := range item.Beats {
		if i > 0 {
			cs = append(cs, cellPlus)
		}
		cs = append(cs, UpperNumber(b)...)
	}
	return cs
}

func (t *Time) String() string {
	var parts []string
	for _, item := range t.Items {
		var beats []string
		for _, b := range item.Beats {
			beats = append(beats, fmt.Sprint(b))
		}
		parts = append(parts, strings.Join(beats, "+")+"/"+fmt.Sprint(item.BeatValue))
	}
	if len(parts) == 0 {
		return "Time " + t.Kind.String()
	}
	return "Time " + t.Kind.String() + " " + strings.Join(parts, " ")
}

func durationForBeatValue(v int) (ValueDuration, bool) {
	switch v {
	case 1:
		return ValueWhole, true
	case 2:
		return ValueHalf, true
	case 4:
		return ValueQuarter, true
	case 8:
		return ValueEighth, true
	case 16:
		return Value16th, true
	case 32:
		return Value32nd, true
	default:
		return 0, false
	}
}

// Barline is an explicit braille barline.
type Barline struct {
	Kind      BarlineKind
	InputLine int
}

func (b *Barline) Cells() Cells   { return b.Kind.Cells() }
func (b *Barline) String() string { return "Barline " + b.Kind.String() }

// Dynamics is a dynamics marking written as a word.
type Dynamics struct {
	Kind      string
	InputLine int
}

func (d *Dynamics) Cells() Cells   { return Concat(Cells{cellWordSign}, Text(d.Kind)) }
func (d *Dynamics) String() string { return "Dynamics " + d.Kind }

// Words is a text direction.
type Words struct {
	Text      string
	InputLine int
}

func (w *Words) Cells() Cells   { return Concat(Cells{cellWordSign}, Text(w.Text)) }
func (w *Words) String() string { return fmt.Sprintf("Words %q", w.Text) }

// Tempo is a tempo indication: optional words followed by an optional
// metronome mark of the form beat-unit = number.
type Tempo struct {
	Words        string
	BeatUnit     ValueDuration
	BeatUnitDots int
	PerMinute    int
	InputLine    int
}

func (t *Tempo) Cells() Cells {
	var cs Cells
	if t.Words != "" {
		cs = append(cs, cellWordSign)
		cs = append(cs, Text(t.Words)...)
	}
	if t.PerMinute > 0 {
		if len(cs) > 0 {
			cs = append(cs, CellSpace)
		}
		cs = append(cs, NoteValue{Step: StepC, Duration: t.BeatUnit}.Cells()...)
		for i := 0; i < t.BeatUnitDots; i++ {
			cs = append(cs, cellMusicDot)
		}
		cs = append(cs, cellEquals)
		cs = append(cs, Number(t.PerMinute)...)
	}
	return cs
}

func (t *Tempo) String() string {
	s := "Tempo"
	if t.Words != "" {
		s += fmt.Sprintf(" %q", t.Words)
	}
	if t.PerMinute > 0 {
		s += fmt.Sprintf(" %s=%d", t.BeatUnit, t.PerMinute)
	}
	return s
}
