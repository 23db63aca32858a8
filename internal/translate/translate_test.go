package translate

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/grame-cncm/libmusicxml-sub019/internal/bsr"
	"github.com/grame-cncm/libmusicxml-sub019/internal/msr"
)

func note(step msr.DiatonicPitch, oct int, d msr.Duration) *msr.Note {
	return &msr.Note{Step: step, Octave: oct, Duration: d}
}

func rest(d msr.Duration) *msr.Note {
	return &msr.Note{Rest: true, Duration: d}
}

func singleVoice(measures ...*msr.Measure) *msr.Score {
	return &msr.Score{
		WorkTitle: "Test",
		PartGroups: []*msr.PartGroup{{
			Parts: []*msr.Part{{
				ID: "P1",
				Staves: []*msr.Staff{{
					Number: 1,
					Voices: []*msr.Voice{{Number: 1, Measures: measures}},
				}},
			}},
		}},
	}
}

func measure(number string, elements ...msr.Element) *msr.Measure {
	return &msr.Measure{Number: number, Elements: elements}
}

func wholeNoteMeasures(n int) []*msr.Measure {
	ms := make([]*msr.Measure, n)
	for i := range ms {
		ms[i] = measure(fmt.Sprint(i+1), note(msr.PitchC, 4, msr.DurationWhole))
	}
	return ms
}

type collector struct {
	events []Event
}

func (c *collector) add(e Event) { c.events = append(c.events, e) }

func (c *collector) warnings() []Event {
	var ws []Event
	for _, e := range c.events {
		if e.Level == LevelWarning {
			ws = append(ws, e)
		}
	}
	return ws
}

func translate(t *testing.T, cfg Config, s *msr.Score) (*bsr.Score, *collector) {
	t.Helper()
	c := &collector{}
	out, err := New(cfg, c.add).Translate(s)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	return out, c
}

func signCount(s *bsr.Score) int {
	n := 0
	for _, p := range s.Pages {
		for _, l := range p.Lines {
			for _, e := range l.Elements {
				if m, ok := e.(*bsr.Measure); ok {
					n += len(m.Signs)
				} else {
					n++
				}
			}
		}
	}
	return n
}

func TestTranslate_EndToEnd(t *testing.T) {
	score := singleVoice(measure("1",
		&msr.Clef{Kind: msr.ClefTreble},
		&msr.Key{Tonic: msr.PitchC, Mode: msr.ModeMajor},
		&msr.Time{Symbol: msr.TimeSymbolCommon, Items: []msr.TimeItem{{Beats: []int{4}, BeatValue: 4}}},
		note(msr.PitchC, 4, msr.DurationQuarter),
		note(msr.PitchG, 4, msr.DurationQuarter),
		note(msr.PitchC, 5, msr.DurationQuarter),
		rest(msr.DurationQuarter),
	))

	out, c := translate(t, DefaultConfig(), score)

	if len(c.warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", c.warnings())
	}
	if len(out.TranscriptionNotes) != 1 {
		t.Errorf("transcription notes = %d, want 1", len(out.TranscriptionNotes))
	}

	page := out.Pages[0]
	h := page.MusicHeading
	if h == nil {
		t.Fatal("first page has no music heading")
	}
	if h.Key == nil || h.Key.Kind != bsr.KeyNaturals || h.Key.Count != 0 {
		t.Errorf("heading key = %v, want naturals 0", h.Key)
	}
	if h.Time == nil || h.Time.Kind != bsr.TimeCommon {
		t.Errorf("heading time = %v, want common", h.Time)
	}
	if h.Clef == nil || h.Clef.Kind != bsr.ClefTreble {
		t.Errorf("heading clef = %v, want treble", h.Clef)
	}
	if page.Heading == nil || page.Heading.Title != "Test" {
		t.Errorf("page heading = %v, want title Test", page.Heading)
	}

	if len(page.Lines) != 1 || len(page.Lines[0].Elements) != 1 {
		t.Fatalf("want one line holding one measure, got %d lines", len(page.Lines))
	}
	m := page.Lines[0].Measures()[0]
	if m.Number != "1" {
		t.Errorf("measure number = %q, want 1", m.Number)
	}

	want := []struct {
		value bsr.NoteValue
		oct   bsr.OctaveKind
		mark  bool
	}{
		{bsr.NoteValue{Step: bsr.StepC, Duration: bsr.ValueQuarter}, bsr.Octave4, true},
		{bsr.NoteValue{Step: bsr.StepG, Duration: bsr.ValueQuarter}, bsr.Octave4, false},
		{bsr.NoteValue{Step: bsr.StepC, Duration: bsr.ValueQuarter}, bsr.Octave5, true},
		{bsr.NoteValue{Step: bsr.StepRest, Duration: bsr.ValueQuarter}, bsr.OctaveNone, false},
	}
	if len(m.Signs) != len(want) {
		t.Fatalf("measure signs = %d, want %d", len(m.Signs), len(want))
	}
	for i, w := range want {
		n, ok := m.Signs[i].(*bsr.Note)
		if !ok {
			t.Fatalf("sign %d is %T, want *bsr.Note", i, m.Signs[i])
		}
		if n.Value != w.value || n.Octave != w.oct || n.OctaveMarkNeeded != w.mark {
			t.Errorf("sign %d = %s, want %s %s mark=%v", i, n, w.value, w.oct, w.mark)
		}
	}

	if got, want := m.Cells().String(), "⠐⠹⠳⠨⠹⠧"; got != want {
		t.Errorf("measure cells = %s, want %s", got, want)
	}
}

func TestTranslate_Idempotent(t *testing.T) {
	score := singleVoice(wholeNoteMeasures(10)...)
	tr := New(DefaultConfig(), nil)

	a, err := tr.Translate(score)
	if err != nil {
		t.Fatal(err)
	}
	b, err := tr.Translate(score)
	if err != nil {
		t.Fatal(err)
	}
	if signCount(a) != signCount(b) || a.NumberOfLines() != b.NumberOfLines() {
		t.Error("translating twice gave different results")
	}
}

func TestTranslate_Degradation(t *testing.T) {
	tests := []struct {
		name        string
		unsupported msr.Element
		wantMessage string
	}{
		{"clef", &msr.Clef{Source: msr.Source{InputLine: 42}, Kind: msr.ClefPercussion}, "clef percussion is not supported in braille"},
		{"barline", &msr.Barline{Source: msr.Source{InputLine: 42}, Style: msr.BarlineStyleHeavy}, "barline style heavy is not supported in braille"},
		{"duration", &msr.Note{Source: msr.Source{InputLine: 42}, Step: msr.PitchD, Octave: 4, Duration: msr.Duration1024th}, "duration 1024th is not supported in braille"},
		{"key mode", &msr.Key{Source: msr.Source{InputLine: 42}, Tonic: msr.PitchD, Mode: msr.ModeDorian}, "key D dorian is not supported in braille"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			supported := []msr.Element{
				note(msr.PitchC, 4, msr.DurationQuarter),
				note(msr.PitchD, 4, msr.DurationQuarter),
				&msr.Dynamics{Kind: "pp"},
				note(msr.PitchE, 4, msr.DurationHalf),
			}
			elements := append([]msr.Element{supported[0], supported[1], tt.unsupported}, supported[2:]...)

			out, c := translate(t, DefaultConfig(), singleVoice(measure("1", elements...)))

			if got := signCount(out); got != len(supported) {
				t.Errorf("signs = %d, want %d", got, len(supported))
			}
			ws := c.warnings()
			if len(ws) != 1 {
				t.Fatalf("warnings = %d, want 1", len(ws))
			}
			if ws[0].Message != tt.wantMessage || ws[0].InputLine != 42 {
				t.Errorf("warning = %q at line %d, want %q at line 42", ws[0].Message, ws[0].InputLine, tt.wantMessage)
			}
		})
	}
}

func TestTranslate_UnsupportedAccidentalKeepsNote(t *testing.T) {
	n := note(msr.PitchB, 4, msr.DurationQuarter)
	n.Accidental = msr.AccidentalQuarterFlat

	out, c := translate(t, DefaultConfig(), singleVoice(measure("1", n)))

	if len(c.warnings()) != 1 {
		t.Errorf("warnings = %d, want 1", len(c.warnings()))
	}
	signs := out.Pages[0].Lines[0].Measures()[0].Signs
	if len(signs) != 1 || signs[0].(*bsr.Note).Accidental != bsr.AccidentalNone {
		t.Errorf("note should be kept without accidental, got %v", signs)
	}
}

func TestTranslate_Pagination(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MeasuresPerLine = 4
	cfg.LinesPerPage = 2

	tests := []struct {
		name      string
		measures  int
		wantPages int
		wantLines []int
	}{
		{"exactly one line", 4, 1, []int{4}},
		{"one more measure", 5, 1, []int{4, 1}},
		{"page overflow", 9, 2, []int{4, 4, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := translate(t, cfg, singleVoice(wholeNoteMeasures(tt.measures)...))

			if len(out.Pages) != tt.wantPages {
				t.Errorf("pages = %d, want %d", len(out.Pages), tt.wantPages)
			}
			var got []int
			for _, p := range out.Pages {
				for _, l := range p.Lines {
					got = append(got, l.MeasuresCount())
				}
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.wantLines) {
				t.Errorf("measures per line = %v, want %v", got, tt.wantLines)
			}
		})
	}
}

func TestTranslate_ExplicitBreaks(t *testing.T) {
	score := singleVoice(
		measure("1", note(msr.PitchC, 4, msr.DurationWhole)),
		measure("2", &msr.LineBreak{}, note(msr.PitchD, 4, msr.DurationWhole)),
		measure("3", &msr.PageBreak{}, note(msr.PitchE, 4, msr.DurationWhole)),
	)

	out, _ := translate(t, DefaultConfig(), score)

	if len(out.Pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(out.Pages))
	}
	p1 := out.Pages[0]
	if len(p1.Lines) != 2 {
		t.Fatalf("page 1 lines = %d, want 2", len(p1.Lines))
	}
	if got := p1.Lines[1].Measures()[0].Number; got != "2" {
		t.Errorf("line 2 starts with measure %s, want 2", got)
	}
	p2 := out.Pages[1]
	if p2.Number != 2 || p2.Lines[0].Number != 1 {
		t.Errorf("page 2 numbering = %d/%d, want 2/1", p2.Number, p2.Lines[0].Number)
	}
	if got := p2.Lines[0].Measures()[0].Number; got != "3" {
		t.Errorf("page 2 starts with measure %s, want 3", got)
	}

	// The first note of a new line always carries its octave.
	n := p1.Lines[1].Measures()[0].Signs[0].(*bsr.Note)
	if !n.OctaveMarkNeeded {
		t.Error("first note on a new line should need an octave mark")
	}
}

func TestTranslate_KeyTimeChangeInsertedBeforeMeasure(t *testing.T) {
	score := singleVoice(
		measure("1",
			&msr.Key{Tonic: msr.PitchC, Mode: msr.ModeMajor},
			&msr.Time{Items: []msr.TimeItem{{Beats: []int{3}, BeatValue: 4}}},
			note(msr.PitchC, 4, msr.DurationQuarter),
		),
		measure("2",
			&msr.Key{Tonic: msr.PitchD, Mode: msr.ModeMajor},
			&msr.Time{Items: []msr.TimeItem{{Beats: []int{6}, BeatValue: 8}}},
			note(msr.PitchD, 4, msr.DurationQuarter),
		),
	)

	out, _ := translate(t, DefaultConfig(), score)

	els := out.Pages[0].Lines[0].Elements
	if len(els) != 4 {
		t.Fatalf("line elements = %d, want 4", len(els))
	}
	if m, ok := els[0].(*bsr.Measure); !ok || m.Number != "1" {
		t.Errorf("element 0 = %v, want measure 1", els[0])
	}
	if k, ok := els[1].(*bsr.Key); !ok || k.Kind != bsr.KeySharps || k.Count != 2 {
		t.Errorf("element 1 = %v, want key 2 sharps", els[1])
	}
	if tm, ok := els[2].(*bsr.Time); !ok || tm.Kind != bsr.TimeNumerical {
		t.Errorf("element 2 = %v, want numerical time", els[2])
	}
	m2, ok := els[3].(*bsr.Measure)
	if !ok || m2.Number != "2" {
		t.Fatalf("element 3 = %v, want measure 2", els[3])
	}
	// D4 is a step away from C4 but the key change resets the reference.
	if !m2.Signs[0].(*bsr.Note).OctaveMarkNeeded {
		t.Error("note after a key change should need an octave mark")
	}
}

func TestTranslate_LineBreakCarriesInsertedSigns(t *testing.T) {
	score := singleVoice(
		measure("1",
			&msr.Key{Tonic: msr.PitchC, Mode: msr.ModeMajor},
			&msr.Tempo{Words: "Allegro"},
			note(msr.PitchC, 4, msr.DurationWhole),
		),
		measure("2",
			&msr.Key{Tonic: msr.PitchG, Mode: msr.ModeMajor},
			&msr.Tempo{Words: "Presto"},
			&msr.LineBreak{},
			note(msr.PitchD, 4, msr.DurationWhole),
		),
	)

	out, _ := translate(t, DefaultConfig(), score)

	lines := out.Pages[0].Lines
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if got := len(lines[0].Elements); got != 1 {
		t.Errorf("line 1 elements = %v, want only measure 1", lines[0].Elements)
	}

	els := lines[1].Elements
	if len(els) != 3 {
		t.Fatalf("line 2 elements = %v, want key, tempo, measure 2", els)
	}
	if k, ok := els[0].(*bsr.Key); !ok || k.Kind != bsr.KeySharps || k.Count != 1 {
		t.Errorf("element 0 = %v, want key 1 sharp", els[0])
	}
	if _, ok := els[1].(*bsr.Tempo); !ok {
		t.Errorf("element 1 = %v, want tempo", els[1])
	}
	if m, ok := els[2].(*bsr.Measure); !ok || m.Number != "2" || len(m.Signs) != 1 {
		t.Errorf("element 2 = %v, want measure 2 with its note", els[2])
	}
}

func TestTranslate_LineBreakOnFirstMeasureKeepsSigns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoBrailleMusicHeadings = true

	out, _ := translate(t, cfg, singleVoice(measure("1",
		&msr.Key{Tonic: msr.PitchF, Mode: msr.ModeMajor},
		&msr.LineBreak{},
		note(msr.PitchF, 4, msr.DurationWhole),
	)))

	lines := out.Pages[0].Lines
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want the break absorbed", len(lines))
	}
	els := lines[0].Elements
	if len(els) != 2 {
		t.Fatalf("elements = %v, want key and measure", els)
	}
	if _, ok := els[0].(*bsr.Key); !ok {
		t.Errorf("element 0 = %v, want key", els[0])
	}
}

func TestTranslate_WordsResetReference(t *testing.T) {
	withWords := note(msr.PitchD, 4, msr.DurationQuarter)
	withWords.Words = []string{"dolce"}
	chordNote := note(msr.PitchF, 4, msr.DurationQuarter)
	chordNote.InChord = true
	chordNote.Words = []string{"ignored"}

	out, _ := translate(t, DefaultConfig(), singleVoice(measure("1",
		note(msr.PitchC, 4, msr.DurationQuarter),
		withWords,
		chordNote,
	)))

	signs := out.Pages[0].Lines[0].Measures()[0].Signs
	if len(signs) != 4 {
		t.Fatalf("signs = %v, want 4", signs)
	}
	w, ok := signs[1].(*bsr.Words)
	if !ok || w.Text != "dolce" {
		t.Fatalf("sign 1 = %v, want words dolce", signs[1])
	}
	if !signs[2].(*bsr.Note).OctaveMarkNeeded {
		t.Error("note after words should need an octave mark")
	}
	if signs[3].(*bsr.Note).OctaveMarkNeeded {
		t.Error("chord note a third above should not need a mark")
	}
}

func TestTranslate_Tempo(t *testing.T) {
	score := func() *msr.Score {
		return singleVoice(
			measure("1",
				&msr.Tempo{Words: "Allegro", BeatUnit: msr.DurationQuarter, PerMinute: 120},
				note(msr.PitchC, 4, msr.DurationWhole),
			),
			measure("2",
				&msr.Tempo{Words: "Meno mosso"},
				note(msr.PitchC, 4, msr.DurationWhole),
			),
		)
	}

	out, _ := translate(t, DefaultConfig(), score())
	if h := out.Pages[0].MusicHeading; h.Tempo == nil || h.Tempo.PerMinute != 120 {
		t.Errorf("heading tempo = %v, want 120", h.Tempo)
	}
	if _, ok := out.Pages[0].Lines[0].Elements[1].(*bsr.Tempo); !ok {
		t.Errorf("second tempo should precede measure 2, got %v", out.Pages[0].Lines[0].Elements)
	}

	cfg := DefaultConfig()
	cfg.NoTempos = true
	out, _ = translate(t, cfg, score())
	if out.Pages[0].MusicHeading.Tempo != nil {
		t.Error("NoTempos should leave the heading tempo empty")
	}
	if n := len(out.Pages[0].Lines[0].Elements); n != 2 {
		t.Errorf("line elements = %d, want only the 2 measures", n)
	}
}

func TestTranslate_NoMusicHeadings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoBrailleMusicHeadings = true

	out, _ := translate(t, cfg, singleVoice(measure("1",
		&msr.Clef{Kind: msr.ClefBass},
		&msr.Key{Tonic: msr.PitchF, Mode: msr.ModeMajor},
		note(msr.PitchF, 3, msr.DurationWhole),
	)))

	if out.Pages[0].MusicHeading != nil {
		t.Error("music heading should be absent")
	}
	els := out.Pages[0].Lines[0].Elements
	if _, ok := els[0].(*bsr.Key); !ok {
		t.Errorf("key should come first in the line, got %v", els)
	}
	m := els[1].(*bsr.Measure)
	if c, ok := m.Signs[0].(*bsr.Clef); !ok || c.Kind != bsr.ClefBass {
		t.Errorf("clef should open the measure, got %v", m.Signs)
	}
}

func TestTranslate_IncludeClefs(t *testing.T) {
	score := func() *msr.Score {
		return singleVoice(
			measure("1", &msr.Clef{Kind: msr.ClefTreble}, note(msr.PitchC, 4, msr.DurationWhole)),
			measure("2", &msr.Clef{Kind: msr.ClefBass}, note(msr.PitchC, 3, msr.DurationWhole)),
		)
	}

	out, _ := translate(t, DefaultConfig(), score())
	if got := len(out.Pages[0].Lines[0].Measures()[1].Signs); got != 2 {
		t.Errorf("measure 2 signs = %d, want clef and note", got)
	}

	cfg := DefaultConfig()
	cfg.IncludeClefs = false
	out, _ = translate(t, cfg, score())
	if got := len(out.Pages[0].Lines[0].Measures()[1].Signs); got != 1 {
		t.Errorf("measure 2 signs = %d, want only the note", got)
	}
}

func TestTranslate_FirstClefKeptWithoutHeadings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoBrailleMusicHeadings = true
	cfg.IncludeClefs = false

	out, _ := translate(t, cfg, singleVoice(
		measure("1", &msr.Clef{Kind: msr.ClefTreble}, note(msr.PitchC, 4, msr.DurationWhole)),
		measure("2", &msr.Clef{Kind: msr.ClefBass}, note(msr.PitchC, 3, msr.DurationWhole)),
	))

	ms := out.Pages[0].Lines[0].Measures()
	if c, ok := ms[0].Signs[0].(*bsr.Clef); !ok || c.Kind != bsr.ClefTreble {
		t.Errorf("measure 1 should open with the first clef, got %v", ms[0].Signs)
	}
	if got := len(ms[1].Signs); got != 1 {
		t.Errorf("measure 2 signs = %d, want only the note", got)
	}
}

func TestTranslate_PlainBarlineIsVerbose(t *testing.T) {
	out, c := translate(t, DefaultConfig(), singleVoice(measure("1",
		note(msr.PitchC, 4, msr.DurationWhole),
		&msr.Barline{Style: msr.BarlineStyleRegular, Source: msr.Source{InputLine: 9}},
	)))

	if got := len(out.Pages[0].Lines[0].Measures()[0].Signs); got != 1 {
		t.Errorf("signs = %d, want only the note", got)
	}
	if len(c.warnings()) != 0 {
		t.Errorf("warnings = %v, want none", c.warnings())
	}

	found := false
	for _, e := range c.events {
		if e.Level == LevelVerbose && e.InputLine == 9 && strings.Contains(e.Message, "left out") {
			found = true
		}
	}
	if !found {
		t.Errorf("no verbose event for the regular barline: %v", c.events)
	}
}

func TestTranslate_ValueSizeSign(t *testing.T) {
	out, _ := translate(t, DefaultConfig(), singleVoice(measure("1",
		note(msr.PitchC, 4, msr.DurationQuarter),
		note(msr.PitchD, 4, msr.Duration16th),
		note(msr.PitchE, 4, msr.Duration16th),
		note(msr.PitchF, 4, msr.DurationEighth),
	)))

	signs := out.Pages[0].Lines[0].Measures()[0].Signs
	want := []bool{false, true, false, true}
	for i, w := range want {
		if got := signs[i].(*bsr.Note).ValueSizeSignNeeded; got != w {
			t.Errorf("note %d value size sign = %v, want %v", i, got, w)
		}
	}
}

func TestTranslate_Fatal(t *testing.T) {
	_, err := New(DefaultConfig(), nil).Translate(nil)
	var fatal *FatalError
	if !errors.As(err, &fatal) || !errors.Is(err, ErrNoScore) {
		t.Errorf("Translate(nil) = %v, want FatalError wrapping ErrNoScore", err)
	}

	score := singleVoice(
		measure("1", &msr.Note{Source: msr.Source{InputLine: 7}, Step: msr.PitchC, Octave: 4, Duration: msr.DurationWhole}),
		measure("2", nil),
	)
	out, err := New(DefaultConfig(), nil).Translate(score)
	if !errors.As(err, &fatal) || !errors.Is(err, msr.ErrMissingNode) {
		t.Fatalf("Translate = %v, want FatalError wrapping ErrMissingNode", err)
	}
	if fatal.InputLine != 7 || !strings.Contains(fatal.Error(), "line 7") {
		t.Errorf("fatal error = %q, want line 7", fatal.Error())
	}
	if out == nil || out.NumberOfMeasures() != 2 {
		t.Error("partial result should be returned with the error")
	}
}

func TestTranslate_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LinesPerPage = 0
	if _, err := New(cfg, nil).Translate(singleVoice()); err == nil {
		t.Error("Translate should reject a zero lines-per-page config")
	}
}
