package signs

import (
	"github.com/grame-cncm/libmusicxml-sub019/internal/bsr"
	"github.com/grame-cncm/libmusicxml-sub019/internal/msr"
)

var durations = map[msr.Duration]bsr.ValueDuration{
	msr.DurationBreve:   bsr.ValueBreve,
	msr.DurationWhole:   bsr.ValueWhole,
	msr.DurationHalf:    bsr.ValueHalf,
	msr.DurationQuarter: bsr.ValueQuarter,
	msr.DurationEighth:  bsr.ValueEighth,
	msr.Duration16th:    bsr.Value16th,
	msr.Duration32nd:    bsr.Value32nd,
	msr.Duration64th:    bsr.Value64th,
	msr.Duration128th:   bsr.Value128th,
	msr.Duration256th:   bsr.Value256th,
}

var steps = map[msr.DiatonicPitch]bsr.NoteStep{
	msr.PitchC: bsr.StepC,
	msr.PitchD: bsr.StepD,
	msr.PitchE: bsr.StepE,
	msr.PitchF: bsr.StepF,
	msr.PitchG: bsr.StepG,
	msr.PitchA: bsr.StepA,
	msr.PitchB: bsr.StepB,
}

// Duration maps a graphic duration. Maxima, long, 512th and 1024th have no braille form.
func Duration(d msr.Duration) (bsr.ValueDuration, bool) {
	v, ok := durations[d]
	return v, ok
}

// PitchDuration fuses a diatonic step and a duration into a braille note value.
// For rests the step is ignored.
func PitchDuration(step msr.DiatonicPitch, d msr.Duration, rest bool) (bsr.NoteValue, bool) {
	dur, ok := Duration(d)
	if !ok {
		return bsr.NoteValue{}, false
	}
	if rest {
		return bsr.NoteValue{Step: bsr.StepRest, Duration: dur}, true
	}
	s, ok := steps[step]
	if !ok {
		return bsr.NoteValue{}, false
	}
	return bsr.NoteValue{Step: s, Duration: dur}, true
}

// Octave maps a scientific octave number to a braille octave; only 0 to 8 exist.
func Octave(o int) (bsr.OctaveKind, bool) {
	if o < 0 || o > 8 {
		return bsr.OctaveNone, false
	}
	return bsr.OctaveKind(o), true
}

var accidentals = map[msr.AccidentalKind]bsr.AccidentalKind{
	msr.AccidentalNone:               bsr.AccidentalNone,
	msr.AccidentalNatural:            bsr.AccidentalNatural,
	msr.AccidentalSharp:              bsr.AccidentalSharp,
	msr.AccidentalFlat:               bsr.AccidentalFlat,
	msr.AccidentalDoubleSharp:        bsr.AccidentalDoubleSharp,
	msr.AccidentalSharpSharp:         bsr.AccidentalDoubleSharp,
	msr.AccidentalDoubleFlat:         bsr.AccidentalDoubleFlat,
	msr.AccidentalQuarterSharp:       bsr.AccidentalQuarterSharp,
	msr.AccidentalThreeQuartersSharp: bsr.AccidentalThreeQuarterSharp,
	msr.AccidentalThreeQuartersFlat:  bsr.AccidentalThreeQuarterFlat,
}

// Accidental maps a displayed accidental. Quarter flat, arrow, slash,
// Persian and editorial variants are unsupported.
func Accidental(a msr.AccidentalKind) (bsr.AccidentalKind, bool) {
	v, ok := accidentals[a]
	return v, ok
}

var clefs = map[msr.ClefKind]bsr.ClefKind{
	msr.ClefNone:         bsr.ClefNone,
	msr.ClefTreble:       bsr.ClefTreble,
	msr.ClefTreblePlus8:  bsr.ClefTreblePlus8,
	msr.ClefTreblePlus15: bsr.ClefTreblePlus15,
	msr.ClefBass:         bsr.ClefBass,
	msr.ClefBassPlus8:    bsr.ClefBassPlus8,
	msr.ClefBassPlus15:   bsr.ClefBassPlus15,
	msr.ClefVarbaritone:  bsr.ClefVarbaritone,
	msr.ClefSubbass:      bsr.ClefSubbass,
	msr.ClefFrenchViolin: bsr.ClefFrenchViolin,
	msr.ClefSoprano:      bsr.ClefSoprano,
	msr.ClefMezzoSoprano: bsr.ClefMezzoSoprano,
	msr.ClefAlto:         bsr.ClefAlto,
	msr.ClefTenor:        bsr.ClefTenor,
	msr.ClefBaritone:     bsr.ClefBaritone,
}

// Clef maps a clef. Sub-octave treble and bass clefs, percussion,
// tablature and jianpu are unsupported.
func Clef(c msr.ClefKind) (bsr.ClefKind, bool) {
	v, ok := clefs[c]
	return v, ok
}

// Position of the natural tonics on the circle of fifths, relative to C.
var tonicFifths = map[msr.DiatonicPitch]int{
	msr.PitchF: -1,
	msr.PitchC: 0,
	msr.PitchG: 1,
	msr.PitchD: 2,
	msr.PitchA: 3,
	msr.PitchE: 4,
	msr.PitchB: 5,
}

// Key returns the braille key signature of a traditional major or minor key.
// The count is in 0..7; kind and count agree, naturals going with 0.
func Key(system msr.KeySystem, tonic msr.DiatonicPitch, alteration msr.Alteration, mode msr.KeyMode) (bsr.KeyKind, int, bool) {
	if system != msr.KeySystemTraditional {
		return 0, 0, false
	}
	base, ok := tonicFifths[tonic]
	if !ok {
		return 0, 0, false
	}

	fifths := base + 7*int(alteration)
	switch mode {
	case msr.ModeMajor:
	case msr.ModeMinor:
		fifths -= 3
	default:
		return 0, 0, false
	}

	switch {
	case fifths == 0:
		return bsr.KeyNaturals, 0, true
	case fifths > 0 && fifths <= 7:
		return bsr.KeySharps, fifths, true
	case fifths < 0 && fifths >= -7:
		return bsr.KeyFlats, -fifths, true
	default:
		return 0, 0, false
	}
}

// Time maps a time signature symbol. It is total: a plain signature
// without symbol is numerical when it carries beat items and none otherwise.
func Time(symbol msr.TimeSymbol, hasItems bool) bsr.TimeKind {
	switch symbol {
	case msr.TimeSymbolCommon:
		return bsr.TimeCommon
	case msr.TimeSymbolCut:
		return bsr.TimeCut
	case msr.TimeSymbolNote:
		return bsr.TimeNote
	case msr.TimeSymbolDottedNote:
		return bsr.TimeDottedNote
	case msr.TimeSymbolSingleNumber:
		return bsr.TimeSingleNumber
	case msr.TimeSymbolSenzaMisura:
		return bsr.TimeSenzaMisura
	default:
		if hasItems {
			return bsr.TimeNumerical
		}
		return bsr.TimeNone
	}
}

// Barline maps a bar style. Regular, heavy, heavy-light, heavy-heavy,
// tick and short barlines have no braille sign.
func Barline(style msr.BarlineStyle) (bsr.BarlineKind, bool) {
	switch style {
	case msr.BarlineStyleDotted, msr.BarlineStyleDashed:
		return bsr.BarlineSpecial, true
	case msr.BarlineStyleLightLight:
		return bsr.BarlineSectionalDouble, true
	case msr.BarlineStyleLightHeavy:
		return bsr.BarlineFinalDouble, true
	default:
		return bsr.BarlineNone, false
	}
}
