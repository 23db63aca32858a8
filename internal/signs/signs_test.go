package signs

import (
	"testing"

	"github.com/grame-cncm/libmusicxml-sub019/internal/bsr"
	"github.com/grame-cncm/libmusicxml-sub019/internal/msr"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name       string
		tonic      msr.DiatonicPitch
		alteration msr.Alteration
		mode       msr.KeyMode
		wantKind   bsr.KeyKind
		wantCount  int
	}{
		{"C major", msr.PitchC, msr.AlterationNatural, msr.ModeMajor, bsr.KeyNaturals, 0},
		{"A minor", msr.PitchA, msr.AlterationNatural, msr.ModeMinor, bsr.KeyNaturals, 0},
		{"G major", msr.PitchG, msr.AlterationNatural, msr.ModeMajor, bsr.KeySharps, 1},
		{"E minor", msr.PitchE, msr.AlterationNatural, msr.ModeMinor, bsr.KeySharps, 1},
		{"F major", msr.PitchF, msr.AlterationNatural, msr.ModeMajor, bsr.KeyFlats, 1},
		{"D minor", msr.PitchD, msr.AlterationNatural, msr.ModeMinor, bsr.KeyFlats, 1},
		{"B major", msr.PitchB, msr.AlterationNatural, msr.ModeMajor, bsr.KeySharps, 5},
		{"F sharp major", msr.PitchF, msr.AlterationSharp, msr.ModeMajor, bsr.KeySharps, 6},
		{"C sharp major", msr.PitchC, msr.AlterationSharp, msr.ModeMajor, bsr.KeySharps, 7},
		{"E flat major", msr.PitchE, msr.AlterationFlat, msr.ModeMajor, bsr.KeyFlats, 3},
		{"C minor", msr.PitchC, msr.AlterationNatural, msr.ModeMinor, bsr.KeyFlats, 3},
		{"C flat major", msr.PitchC, msr.AlterationFlat, msr.ModeMajor, bsr.KeyFlats, 7},
		{"A flat minor", msr.PitchA, msr.AlterationFlat, msr.ModeMinor, bsr.KeyFlats, 7},
		{"G sharp minor", msr.PitchG, msr.AlterationSharp, msr.ModeMinor, bsr.KeySharps, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, count, ok := Key(msr.KeySystemTraditional, tt.tonic, tt.alteration, tt.mode)
			if !ok {
				t.Fatal("key should be supported")
			}
			if kind != tt.wantKind || count != tt.wantCount {
				t.Errorf("Key() = %s %d, want %s %d", kind, count, tt.wantKind, tt.wantCount)
			}
		})
	}
}

func TestKey_RoundTrip(t *testing.T) {
	pitches := []msr.DiatonicPitch{msr.PitchC, msr.PitchD, msr.PitchE, msr.PitchF, msr.PitchG, msr.PitchA, msr.PitchB}
	alterations := []msr.Alteration{msr.AlterationFlat, msr.AlterationNatural, msr.AlterationSharp}
	modes := []msr.KeyMode{msr.ModeMajor, msr.ModeMinor}

	zeros := 0
	for _, p := range pitches {
		for _, a := range alterations {
			for _, m := range modes {
				kind, count, ok := Key(msr.KeySystemTraditional, p, a, m)
				if !ok {
					continue
				}
				if count < 0 || count > 7 {
					t.Errorf("%s %s %s: count %d out of range", p, a, m, count)
				}
				if (count == 0) != (kind == bsr.KeyNaturals) {
					t.Errorf("%s %s %s: kind %s disagrees with count %d", p, a, m, kind, count)
				}
				if count == 0 {
					zeros++
				}
			}
		}
	}
	if zeros != 2 {
		t.Errorf("zero-alteration keys = %d, want 2 (C major and A minor)", zeros)
	}
}

func TestKey_Unsupported(t *testing.T) {
	tests := []struct {
		name       string
		system     msr.KeySystem
		tonic      msr.DiatonicPitch
		alteration msr.Alteration
		mode       msr.KeyMode
	}{
		{"dorian", msr.KeySystemTraditional, msr.PitchD, msr.AlterationNatural, msr.ModeDorian},
		{"ionian", msr.KeySystemTraditional, msr.PitchC, msr.AlterationNatural, msr.ModeIonian},
		{"humdrum", msr.KeySystemHumdrumScot, msr.PitchC, msr.AlterationNatural, msr.ModeMajor},
		{"G sharp major", msr.KeySystemTraditional, msr.PitchG, msr.AlterationSharp, msr.ModeMajor},
		{"F flat major", msr.KeySystemTraditional, msr.PitchF, msr.AlterationFlat, msr.ModeMajor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := Key(tt.system, tt.tonic, tt.alteration, tt.mode); ok {
				t.Error("key should be unsupported")
			}
		})
	}
}

func TestPitchDuration(t *testing.T) {
	v, ok := PitchDuration(msr.PitchG, msr.DurationQuarter, false)
	if !ok || v != (bsr.NoteValue{Step: bsr.StepG, Duration: bsr.ValueQuarter}) {
		t.Errorf("PitchDuration(G, quarter) = %v, %v", v, ok)
	}

	v, ok = PitchDuration(msr.PitchG, msr.DurationHalf, true)
	if !ok || v.Step != bsr.StepRest {
		t.Errorf("rest PitchDuration = %v, %v, want rest", v, ok)
	}

	for _, d := range []msr.Duration{msr.DurationMaxima, msr.DurationLong, msr.Duration512th, msr.Duration1024th, msr.DurationUnknown} {
		if _, ok := PitchDuration(msr.PitchC, d, false); ok {
			t.Errorf("duration %s should be unsupported", d)
		}
	}
}

func TestAccidental(t *testing.T) {
	supported := map[msr.AccidentalKind]bsr.AccidentalKind{
		msr.AccidentalNone:               bsr.AccidentalNone,
		msr.AccidentalSharp:              bsr.AccidentalSharp,
		msr.AccidentalSharpSharp:         bsr.AccidentalDoubleSharp,
		msr.AccidentalThreeQuartersFlat:  bsr.AccidentalThreeQuarterFlat,
		msr.AccidentalThreeQuartersSharp: bsr.AccidentalThreeQuarterSharp,
	}
	for in, want := range supported {
		if got, ok := Accidental(in); !ok || got != want {
			t.Errorf("Accidental(%s) = %s, %v, want %s", in, got, ok, want)
		}
	}

	for _, a := range []msr.AccidentalKind{msr.AccidentalQuarterFlat, msr.AccidentalSori, msr.AccidentalSlashFlat, msr.AccidentalTripleSharp} {
		if _, ok := Accidental(a); ok {
			t.Errorf("accidental %s should be unsupported", a)
		}
	}
}

func TestClef(t *testing.T) {
	if got, ok := Clef(msr.ClefAlto); !ok || got != bsr.ClefAlto {
		t.Errorf("Clef(alto) = %s, %v", got, ok)
	}
	for _, c := range []msr.ClefKind{msr.ClefTrebleMinus8, msr.ClefBassMinus15, msr.ClefPercussion, msr.ClefTablature, msr.ClefJianpu} {
		if _, ok := Clef(c); ok {
			t.Errorf("clef %s should be unsupported", c)
		}
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		symbol   msr.TimeSymbol
		hasItems bool
		want     bsr.TimeKind
	}{
		{msr.TimeSymbolCommon, true, bsr.TimeCommon},
		{msr.TimeSymbolCut, true, bsr.TimeCut},
		{msr.TimeSymbolNone, true, bsr.TimeNumerical},
		{msr.TimeSymbolNone, false, bsr.TimeNone},
		{msr.TimeSymbolSenzaMisura, false, bsr.TimeSenzaMisura},
		{msr.TimeSymbolDottedNote, true, bsr.TimeDottedNote},
	}
	for _, tt := range tests {
		if got := Time(tt.symbol, tt.hasItems); got != tt.want {
			t.Errorf("Time(%s, %v) = %s, want %s", tt.symbol, tt.hasItems, got, tt.want)
		}
	}
}

func TestBarline(t *testing.T) {
	tests := []struct {
		style msr.BarlineStyle
		want  bsr.BarlineKind
		ok    bool
	}{
		{msr.BarlineStyleDotted, bsr.BarlineSpecial, true},
		{msr.BarlineStyleDashed, bsr.BarlineSpecial, true},
		{msr.BarlineStyleLightLight, bsr.BarlineSectionalDouble, true},
		{msr.BarlineStyleLightHeavy, bsr.BarlineFinalDouble, true},
		{msr.BarlineStyleRegular, bsr.BarlineNone, false},
		{msr.BarlineStyleHeavy, bsr.BarlineNone, false},
		{msr.BarlineStyleTick, bsr.BarlineNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			got, ok := Barline(tt.style)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Barline() = %s, %v, want %s, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestOctave(t *testing.T) {
	if got, ok := Octave(4); !ok || got != bsr.Octave4 {
		t.Errorf("Octave(4) = %s, %v", got, ok)
	}
	if _, ok := Octave(9); ok {
		t.Error("octave 9 should be unsupported")
	}
	if _, ok := Octave(-1); ok {
		t.Error("octave -1 should be unsupported")
	}
}
