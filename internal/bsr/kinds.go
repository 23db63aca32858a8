package bsr

import "fmt"

// NoteStep is the braille note letter; StepRest marks a rest.
type NoteStep int

const (
	StepRest NoteStep = iota
	StepC
	StepD
	StepE
	StepF
	StepG
	StepA
	StepB
)

func (s NoteStep) String() string {
	switch s {
	case StepRest:
		return "rest"
	case StepC:
		return "C"
	case StepD:
		return "D"
	case StepE:
		return "E"
	case StepF:
		return "F"
	case StepG:
		return "G"
	case StepA:
		return "A"
	case StepB:
		return "B"
	default:
		return fmt.Sprintf("NoteStep(%d)", int(s))
	}
}

// ValueDuration is one of the durations representable in braille.
type ValueDuration int

const (
	ValueBreve ValueDuration = iota
	ValueWhole
	ValueHalf
	ValueQuarter
	ValueEighth
	Value16th
	Value32nd
	Value64th
	Value128th
	Value256th
)

var valueDurationNames = [...]string{
	"breve", "whole", "half", "quarter", "eighth",
	"16th", "32nd", "64th", "128th", "256th",
}

func (d ValueDuration) String() string {
	if d < 0 || int(d) >= len(valueDurationNames) {
		return fmt.Sprintf("ValueDuration(%d)", int(d))
	}
	return valueDurationNames[d]
}

// Smaller reports whether d belongs to the smaller-values range (16th and shorter).
// Whole and 16th share their braille form, so do half and 32nd, and so on.
func (d ValueDuration) Smaller() bool {
	return d >= Value16th
}

// family returns the duration whose braille form d shares: whole, half, quarter or eighth.
func (d ValueDuration) family() ValueDuration {
	switch d {
	case ValueBreve, ValueWhole, Value16th, Value256th:
		return ValueWhole
	case ValueHalf, Value32nd:
		return ValueHalf
	case ValueQuarter, Value64th:
		return ValueQuarter
	default:
		return ValueEighth
	}
}

// Eighth-note forms; longer values add dots 3 and 6.
var stepEighthCells = map[NoteStep]Cell{
	StepC: Dots(1, 4, 5),
	StepD: Dots(1, 5),
	StepE: Dots(1, 2, 4),
	StepF: Dots(1, 2, 4, 5),
	StepG: Dots(1, 2, 5),
	StepA: Dots(2, 4),
	StepB: Dots(2, 4, 5),
}

var restCells = map[ValueDuration]Cell{
	ValueWhole:   Dots(1, 3, 4),
	ValueHalf:    Dots(1, 3, 6),
	ValueQuarter: Dots(1, 2, 3, 6),
	ValueEighth:  Dots(1, 3, 4, 6),
}

var (
	breveSuffix  = Cells{Dots(4, 5), Dots(1, 4)}
	prefix256th  = Cells{Dots(5, 6)}
	largerValues = Cells{Dots(4, 5), Dots(1, 2, 6), Dots(2)}
	smallerValue = Cells{Dots(6), Dots(1, 2, 6), Dots(2)}
)

// LargerValuesSign announces that following values are in the whole to eighth range.
func LargerValuesSign() Cells { return append(Cells(nil), largerValues...) }

// SmallerValuesSign announces that following values are 16th or shorter.
func SmallerValuesSign() Cells { return append(Cells(nil), smallerValue...) }

// NoteValue is a note letter combined with a duration.
type NoteValue struct {
	Step     NoteStep
	Duration ValueDuration
}

// Cells returns the braille form of the value, without dots or octave.
func (v NoteValue) Cells() Cells {
	fam := v.Duration.family()

	var c Cell
	if v.Step == StepRest {
		c = restCells[fam]
	} else {
		c = stepEighthCells[v.Step]
		switch fam {
		case ValueWhole:
			c |= Dots(3, 6)
		case ValueHalf:
			c |= Dots(3)
		case ValueQuarter:
			c |= Dots(6)
		}
	}

	switch v.Duration {
	case ValueBreve:
		return Concat(Cells{c}, breveSuffix)
	case Value256th:
		return Concat(prefix256th, Cells{c})
	default:
		return Cells{c}
	}
}

func (v NoteValue) String() string {
	return v.Step.String() + " " + v.Duration.String()
}

// OctaveKind is a braille octave number; OctaveNone means no octave applies.
type OctaveKind int

const (
	OctaveNone OctaveKind = iota - 1
	Octave0
	Octave1
	Octave2
	Octave3
	Octave4
	Octave5
	Octave6
	Octave7
	Octave8
)

var octaveCells = map[OctaveKind]Cells{
	Octave0: {Dots(4), Dots(4)},
	Octave1: {Dots(4)},
	Octave2: {Dots(4, 5)},
	Octave3: {Dots(4, 5, 6)},
	Octave4: {Dots(5)},
	Octave5: {Dots(4, 6)},
	Octave6: {Dots(5, 6)},
	Octave7: {Dots(6)},
	Octave8: {Dots(6), Dots(6)},
}

// Cells returns the octave mark.
func (o OctaveKind) Cells() Cells { return octaveCells[o] }

func (o OctaveKind) String() string {
	if o == OctaveNone {
		return "none"
	}
	return fmt.Sprintf("octave %d", int(o))
}

// AccidentalKind is a braille accidental.
type AccidentalKind int

const (
	AccidentalNone AccidentalKind = iota
	AccidentalNatural
	AccidentalSharp
	AccidentalFlat
	AccidentalDoubleSharp
	AccidentalDoubleFlat
	AccidentalQuarterSharp
	AccidentalThreeQuarterSharp
	AccidentalThreeQuarterFlat
)

var (
	cellSharp   = Dots(1, 4, 6)
	cellFlat    = Dots(1, 2, 6)
	cellNatural = Dots(1, 6)
)

var accidentalCells = map[AccidentalKind]Cells{
	AccidentalNatural:           {cellNatural},
	AccidentalSharp:             {cellSharp},
	AccidentalFlat:              {cellFlat},
	AccidentalDoubleSharp:       {cellSharp, cellSharp},
	AccidentalDoubleFlat:        {cellFlat, cellFlat},
	AccidentalQuarterSharp:      {Dots(4), cellSharp},
	AccidentalThreeQuarterSharp: {Dots(4, 5, 6), cellSharp},
	AccidentalThreeQuarterFlat:  {Dots(4, 5, 6), cellFlat},
}

var accidentalNames = map[AccidentalKind]string{
	AccidentalNone:              "none",
	AccidentalNatural:           "natural",
	AccidentalSharp:             "sharp",
	AccidentalFlat:              "flat",
	AccidentalDoubleSharp:       "double sharp",
	AccidentalDoubleFlat:        "double flat",
	AccidentalQuarterSharp:      "quarter sharp",
	AccidentalThreeQuarterSharp: "three-quarters sharp",
	AccidentalThreeQuarterFlat:  "three-quarters flat",
}

func (a AccidentalKind) Cells() Cells { return accidentalCells[a] }

func (a AccidentalKind) String() string {
	if s, ok := accidentalNames[a]; ok {
		return s
	}
	return fmt.Sprintf("AccidentalKind(%d)", int(a))
}

// ClefKind is a clef representable in braille.
type ClefKind int

const (
	ClefNone ClefKind = iota
	ClefTreble
	ClefFrenchViolin
	ClefBass
	ClefVarbaritone
	ClefSubbass
	ClefSoprano
	ClefMezzoSoprano
	ClefAlto
	ClefTenor
	ClefBaritone
	ClefTreblePlus8
	ClefTreblePlus15
	ClefBassPlus8
	ClefBassPlus15
)

type clefShape struct {
	name string
	// symbol is the G, F or C cell between the clef prefix and suffix.
	symbol Cell
	// line holds the modifier for a non-standard staff line, if any.
	line Cells
	// octave is the number appended for octave-displaced clefs.
	octave int
}

var (
	clefG = Dots(3, 4)
	clefF = Dots(3, 4, 5, 6)
	clefC = Dots(3, 4, 6)
)

var clefShapes = map[ClefKind]clefShape{
	ClefTreble:       {name: "treble", symbol: clefG},
	ClefFrenchViolin: {name: "french violin", symbol: clefG, line: Cells{Dots(4)}},
	ClefBass:         {name: "bass", symbol: clefF},
	ClefVarbaritone:  {name: "varbaritone", symbol: clefF, line: Cells{Dots(4, 5, 6)}},
	ClefSubbass:      {name: "subbass", symbol: clefF, line: Cells{Dots(4, 6)}},
	ClefSoprano:      {name: "soprano", symbol: clefC, line: Cells{Dots(4)}},
	ClefMezzoSoprano: {name: "mezzo-soprano", symbol: clefC, line: Cells{Dots(4, 5)}},
	ClefAlto:         {name: "alto", symbol: clefC},
	ClefTenor:        {name: "tenor", symbol: clefC, line: Cells{Dots(5)}},
	ClefBaritone:     {name: "baritone", symbol: clefC, line: Cells{Dots(4, 6)}},
	ClefTreblePlus8:  {name: "treble+8", symbol: clefG, octave: 8},
	ClefTreblePlus15: {name: "treble+15", symbol: clefG, octave: 15},
	ClefBassPlus8:    {name: "bass+8", symbol: clefF, octave: 8},
	ClefBassPlus15:   {name: "bass+15", symbol: clefF, octave: 15},
}

// Cells returns the clef sign; ClefNone has no cells.
func (k ClefKind) Cells() Cells {
	shape, ok := clefShapes[k]
	if !ok {
		return nil
	}
	cs := Concat(Cells{cellWordSign, shape.symbol}, shape.line, Cells{Dots(1, 2, 3)})
	if shape.octave != 0 {
		cs = Concat(cs, Number(shape.octave))
	}
	return cs
}

func (k ClefKind) String() string {
	if k == ClefNone {
		return "none"
	}
	if shape, ok := clefShapes[k]; ok {
		return shape.name
	}
	return fmt.Sprintf("ClefKind(%d)", int(k))
}

// KeyKind tells which accidental a key signature repeats.
type KeyKind int

const (
	KeyNaturals KeyKind = iota
	KeySharps
	KeyFlats
)

func (k KeyKind) String() string {
	switch k {
	case KeyNaturals:
		return "naturals"
	case KeySharps:
		return "sharps"
	case KeyFlats:
		return "flats"
	default:
		return fmt.Sprintf("KeyKind(%d)", int(k))
	}
}

func (k KeyKind) cell() Cell {
	switch k {
	case KeySharps:
		return cellSharp
	case KeyFlats:
		return cellFlat
	default:
		return cellNatural
	}
}

// TimeKind is the braille form of a time signature.
type TimeKind int

const (
	TimeNone TimeKind = iota
	TimeCommon
	TimeCut
	TimeNumerical
	TimeNote
	TimeDottedNote
	TimeSingleNumber
	TimeSenzaMisura
)

var timeKindNames = [...]string{
	"none", "common", "cut", "numerical", "note", "dotted-note", "single-number", "senza-misura",
}

func (k TimeKind) String() string {
	if k < 0 || int(k) >= len(timeKindNames) {
		return fmt.Sprintf("TimeKind(%d)", int(k))
	}
	return timeKindNames[k]
}

// BarlineKind is a barline that braille writes explicitly.
type BarlineKind int

const (
	BarlineNone BarlineKind = iota
	BarlineSpecial
	BarlineSectionalDouble
	BarlineFinalDouble
)

var barlineCells = map[BarlineKind]Cells{
	BarlineSpecial:         {Dots(1, 3)},
	BarlineSectionalDouble: {Dots(1, 2, 6), Dots(1, 3), Dots(3)},
	BarlineFinalDouble:     {Dots(1, 2, 6), Dots(1, 3)},
}

func (k BarlineKind) Cells() Cells { return barlineCells[k] }

func (k BarlineKind) String() string {
	switch k {
	case BarlineNone:
		return "none"
	case BarlineSpecial:
		return "special"
	case BarlineSectionalDouble:
		return "sectional double"
	case BarlineFinalDouble:
		return "final double"
	default:
		return fmt.Sprintf("BarlineKind(%d)", int(k))
	}
}
