package msr

import (
	"fmt"
	"strings"
)

// DiatonicPitch is one of the seven natural note names, ignoring accidentals.
type DiatonicPitch int

const (
	PitchC DiatonicPitch = iota
	PitchD
	PitchE
	PitchF
	PitchG
	PitchA
	PitchB
)

var pitchNames = []string{"C", "D", "E", "F", "G", "A", "B"}

// Index returns the position of the pitch in the C-based diatonic scale (C=0 … B=6).
func (p DiatonicPitch) Index() int {
	return int(p)
}

func (p DiatonicPitch) String() string {
	if p < PitchC || p > PitchB {
		return fmt.Sprintf("DiatonicPitch(%d)", int(p))
	}
	return pitchNames[p]
}

// ParseDiatonicPitch parses a note letter, case insensitive.
func ParseDiatonicPitch(s string) (DiatonicPitch, error) {
	for i, name := range pitchNames {
		if strings.EqualFold(s, name) {
			return DiatonicPitch(i), nil
		}
	}
	return 0, fmt.Errorf("unknown diatonic pitch %q", s)
}

// Duration is the graphic (notated) duration of a note or rest.
type Duration int

const (
	DurationUnknown Duration = iota
	DurationMaxima
	DurationLong
	DurationBreve
	DurationWhole
	DurationHalf
	DurationQuarter
	DurationEighth
	Duration16th
	Duration32nd
	Duration64th
	Duration128th
	Duration256th
	Duration512th
	Duration1024th
)

var durationNames = map[Duration]string{
	DurationMaxima:  "maxima",
	DurationLong:    "long",
	DurationBreve:   "breve",
	DurationWhole:   "whole",
	DurationHalf:    "half",
	DurationQuarter: "quarter",
	DurationEighth:  "eighth",
	Duration16th:    "16th",
	Duration32nd:    "32nd",
	Duration64th:    "64th",
	Duration128th:   "128th",
	Duration256th:   "256th",
	Duration512th:   "512th",
	Duration1024th:  "1024th",
}

func (d Duration) String() string {
	if name, ok := durationNames[d]; ok {
		return name
	}
	return "unknown"
}

// ParseDuration parses a MusicXML note type name such as "quarter" or "32nd".
// "8th" is accepted as an alias of "eighth".
func ParseDuration(s string) (Duration, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "8th" {
		return DurationEighth, nil
	}
	for d, name := range durationNames {
		if name == s {
			return d, nil
		}
	}
	return DurationUnknown, fmt.Errorf("unknown duration %q", s)
}

// AccidentalKind is the accidental displayed in front of a note.
type AccidentalKind int

const (
	AccidentalNone AccidentalKind = iota
	AccidentalNatural
	AccidentalSharp
	AccidentalFlat
	AccidentalDoubleSharp
	AccidentalSharpSharp
	AccidentalDoubleFlat
	AccidentalNaturalSharp
	AccidentalNaturalFlat
	AccidentalQuarterFlat
	AccidentalQuarterSharp
	AccidentalThreeQuartersFlat
	AccidentalThreeQuartersSharp
	AccidentalSharpDown
	AccidentalSharpUp
	AccidentalNaturalDown
	AccidentalNaturalUp
	AccidentalFlatDown
	AccidentalFlatUp
	AccidentalTripleSharp
	AccidentalTripleFlat
	AccidentalSlashQuarterSharp
	AccidentalSlashSharp
	AccidentalSlashFlat
	AccidentalDoubleSlashFlat
	AccidentalSori
	AccidentalKoron
	AccidentalOther
)

var accidentalNames = map[AccidentalKind]string{
	AccidentalNone:               "none",
	AccidentalNatural:            "natural",
	AccidentalSharp:              "sharp",
	AccidentalFlat:               "flat",
	AccidentalDoubleSharp:        "double-sharp",
	AccidentalSharpSharp:         "sharp-sharp",
	AccidentalDoubleFlat:         "flat-flat",
	AccidentalNaturalSharp:       "natural-sharp",
	AccidentalNaturalFlat:        "natural-flat",
	AccidentalQuarterFlat:        "quarter-flat",
	AccidentalQuarterSharp:       "quarter-sharp",
	AccidentalThreeQuartersFlat:  "three-quarters-flat",
	AccidentalThreeQuartersSharp: "three-quarters-sharp",
	AccidentalSharpDown:          "sharp-down",
	AccidentalSharpUp:            "sharp-up",
	AccidentalNaturalDown:        "natural-down",
	AccidentalNaturalUp:          "natural-up",
	AccidentalFlatDown:           "flat-down",
	AccidentalFlatUp:             "flat-up",
	AccidentalTripleSharp:        "triple-sharp",
	AccidentalTripleFlat:         "triple-flat",
	AccidentalSlashQuarterSharp:  "slash-quarter-sharp",
	AccidentalSlashSharp:         "slash-sharp",
	AccidentalSlashFlat:          "slash-flat",
	AccidentalDoubleSlashFlat:    "double-slash-flat",
	AccidentalSori:               "sori",
	AccidentalKoron:              "koron",
	AccidentalOther:              "other",
}

func (a AccidentalKind) String() string {
	if name, ok := accidentalNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAccidental parses a MusicXML accidental name. The empty string means
// no accidental; "double-flat" is accepted as an alias of "flat-flat".
func ParseAccidental(s string) (AccidentalKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return AccidentalNone, nil
	case "double-flat":
		return AccidentalDoubleFlat, nil
	}
	for a, name := range accidentalNames {
		if name == s {
			return a, nil
		}
	}
	return AccidentalNone, fmt.Errorf("unknown accidental %q", s)
}

// Alteration is a chromatic alteration in semitones, used for key tonics.
type Alteration int

const (
	AlterationDoubleFlat  Alteration = -2
	AlterationFlat        Alteration = -1
	AlterationNatural     Alteration = 0
	AlterationSharp       Alteration = 1
	AlterationDoubleSharp Alteration = 2
)

func (a Alteration) String() string {
	switch a {
	case AlterationDoubleFlat:
		return "double-flat"
	case AlterationFlat:
		return "flat"
	case AlterationNatural:
		return "natural"
	case AlterationSharp:
		return "sharp"
	case AlterationDoubleSharp:
		return "double-sharp"
	}
	return fmt.Sprintf("Alteration(%d)", int(a))
}

// ParseAlteration parses an alteration name; the empty string is natural.
func ParseAlteration(s string) (Alteration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "natural":
		return AlterationNatural, nil
	case "flat":
		return AlterationFlat, nil
	case "sharp":
		return AlterationSharp, nil
	case "double-flat", "flat-flat":
		return AlterationDoubleFlat, nil
	case "double-sharp":
		return AlterationDoubleSharp, nil
	}
	return AlterationNatural, fmt.Errorf("unknown alteration %q", s)
}
