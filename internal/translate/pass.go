package translate

import (
	"fmt"
	"strings"

	"github.com/grame-cncm/libmusicxml-sub019/internal/bsr"
	"github.com/grame-cncm/libmusicxml-sub019/internal/layout"
	"github.com/grame-cncm/libmusicxml-sub019/internal/msr"
	"github.com/grame-cncm/libmusicxml-sub019/internal/octave"
	"github.com/grame-cncm/libmusicxml-sub019/internal/signs"
)

// pass holds the state of one translation.
type pass struct {
	msr.BaseVisitor

	cfg    Config
	policy *layout.Policy
	emit   func(Event)

	score   *bsr.Score
	page    *bsr.Page
	line    *bsr.Line
	measure *bsr.Measure

	// reference is the last note written, nil when the next pitched note
	// must carry an octave mark.
	reference *octave.Pitch

	// lastSmaller is the value range of the last note on the line.
	haveLastSize bool
	lastSmaller  bool

	seenClef, seenKey, seenTime, seenTempo bool

	warnings      int
	lastInputLine int
}

func (p *pass) VisitScoreStart(s *msr.Score) error {
	p.lastInputLine = s.LineNumber()
	if p.cfg.Provenance != "" {
		p.score.AddTranscriptionNote(p.cfg.Provenance)
	}

	p.page = p.score.NewPage(p.cfg.LinesPerPage)
	p.page.Heading = &bsr.PageHeading{Title: s.WorkTitle, PageNumber: p.page.Number}
	if !p.cfg.NoBrailleMusicHeadings {
		p.page.MusicHeading = &bsr.MusicHeading{}
	}
	p.line = p.page.NewLine(p.cfg.CellsPerLine)
	p.resetLineContext()
	return nil
}

func (p *pass) VisitVoiceStart(v *msr.Voice) error {
	// A new voice does not continue the melodic line of the previous one.
	if !p.line.Empty() {
		p.apply(p.policy.OnLineBreak(p.fill()))
	}
	p.resetLineContext()
	return nil
}

func (p *pass) VisitMeasureStart(m *msr.Measure) error {
	p.apply(p.policy.BeforeMeasure(p.fill()))
	p.measure = p.line.NewMeasure(m.Number)
	return nil
}

func (p *pass) VisitLineBreak(b *msr.LineBreak) error {
	p.lastInputLine = b.LineNumber()
	p.breakWith(p.policy.OnLineBreak)
	return nil
}

func (p *pass) VisitPageBreak(b *msr.PageBreak) error {
	p.lastInputLine = b.LineNumber()
	p.breakWith(p.policy.OnPageBreak)
	return nil
}

// breakWith applies an explicit break. A measure that has been opened but
// holds no sign yet moves along to the new line, together with the signs
// inserted before it.
func (p *pass) breakWith(decide func(layout.Fill) layout.Action) {
	carried := p.takeOpenMeasure()
	p.apply(decide(p.fill()))
	for _, e := range carried {
		p.line.Append(e)
	}
}

// takeOpenMeasure removes the trailing empty current measure and the
// standalone signs right before it from the line, and returns them in order.
func (p *pass) takeOpenMeasure() []bsr.LineElement {
	els := p.line.Elements
	n := len(els)
	if p.measure == nil || len(p.measure.Signs) > 0 || n == 0 || els[n-1] != bsr.LineElement(p.measure) {
		return nil
	}

	start := n - 1
	for start > 0 {
		if _, ok := els[start-1].(*bsr.Measure); ok {
			break
		}
		start--
	}

	carried := append([]bsr.LineElement(nil), els[start:]...)
	p.line.Elements = els[:start]
	return carried
}

func (p *pass) VisitClef(c *msr.Clef) error {
	p.lastInputLine = c.LineNumber()

	kind, ok := signs.Clef(c.Kind)
	if !ok {
		p.unsupported("clef", c.Kind.String(), c.LineNumber())
		return nil
	}
	if kind == bsr.ClefNone {
		return nil
	}
	sign := &bsr.Clef{Kind: kind, InputLine: c.LineNumber()}

	first := !p.seenClef
	p.seenClef = true
	if first && p.page.MusicHeading != nil {
		p.page.MusicHeading.Clef = sign
		return nil
	}
	if !first && !p.cfg.IncludeClefs {
		p.verbose(fmt.Sprintf("Clef %s left out", kind), c.LineNumber())
		return nil
	}
	p.measure.Append(sign)
	return nil
}

func (p *pass) VisitKey(k *msr.Key) error {
	p.lastInputLine = k.LineNumber()

	kind, count, ok := signs.Key(k.System, k.Tonic, k.Alteration, k.Mode)
	if !ok {
		p.unsupported("key", describeKey(k), k.LineNumber())
		return nil
	}
	sign := &bsr.Key{Kind: kind, Count: count, InputLine: k.LineNumber()}

	first := !p.seenKey
	p.seenKey = true
	if first && p.page.MusicHeading != nil {
		p.page.MusicHeading.Key = sign
		return nil
	}
	p.insertInLine(sign)
	return nil
}

func (p *pass) VisitTime(t *msr.Time) error {
	p.lastInputLine = t.LineNumber()

	sign := &bsr.Time{
		Kind:      signs.Time(t.Symbol, len(t.Items) > 0),
		InputLine: t.LineNumber(),
	}
	for _, item := range t.Items {
		sign.Items = append(sign.Items, bsr.TimeItem{
			Beats:     append([]int(nil), item.Beats...),
			BeatValue: item.BeatValue,
		})
	}

	first := !p.seenTime
	p.seenTime = true
	if first && p.page.MusicHeading != nil {
		p.page.MusicHeading.Time = sign
		return nil
	}
	p.insertInLine(sign)
	return nil
}

func (p *pass) VisitTempo(t *msr.Tempo) error {
	p.lastInputLine = t.LineNumber()

	if p.cfg.NoTempos {
		p.verbose("Tempo left out", t.LineNumber())
		return nil
	}

	sign := &bsr.Tempo{Words: t.Words, PerMinute: t.PerMinute, BeatUnitDots: t.BeatUnitDots, InputLine: t.LineNumber()}
	if t.PerMinute > 0 {
		unit, ok := signs.Duration(t.BeatUnit)
		if !ok {
			p.unsupported("tempo beat unit", t.BeatUnit.String(), t.LineNumber())
			return nil
		}
		sign.BeatUnit = unit
	}

	first := !p.seenTempo
	p.seenTempo = true
	if first && p.page.MusicHeading != nil {
		p.page.MusicHeading.Tempo = sign
		return nil
	}
	p.insertInLine(sign)
	return nil
}

func (p *pass) VisitBarline(b *msr.Barline) error {
	p.lastInputLine = b.LineNumber()

	if b.Style == msr.BarlineStyleRegular || b.Style == msr.BarlineStyleNone {
		p.verbose(fmt.Sprintf("Barline style %s left out", b.Style), b.LineNumber())
		return nil
	}
	kind, ok := signs.Barline(b.Style)
	if !ok {
		p.unsupported("barline style", b.Style.String(), b.LineNumber())
		return nil
	}
	p.measure.Append(&bsr.Barline{Kind: kind, InputLine: b.LineNumber()})
	return nil
}

func (p *pass) VisitDynamics(d *msr.Dynamics) error {
	p.lastInputLine = d.LineNumber()
	p.measure.Append(&bsr.Dynamics{Kind: d.Kind, InputLine: d.LineNumber()})
	return nil
}

func (p *pass) VisitWords(w *msr.Words) error {
	p.lastInputLine = w.LineNumber()
	p.measure.Append(&bsr.Words{Text: w.Text, InputLine: w.LineNumber()})
	p.reference = nil
	return nil
}

func (p *pass) VisitNote(n *msr.Note) error {
	p.lastInputLine = n.LineNumber()

	if len(n.Words) > 0 && !n.InChord {
		for _, w := range n.Words {
			p.measure.Append(&bsr.Words{Text: w, InputLine: n.LineNumber()})
		}
		p.reference = nil
	}

	value, ok := signs.PitchDuration(n.Step, n.Duration, n.Rest)
	if !ok {
		p.unsupported("duration", n.Duration.String(), n.LineNumber())
		return nil
	}

	oct := bsr.OctaveNone
	if !n.Rest {
		if oct, ok = signs.Octave(n.Octave); !ok {
			p.unsupported("octave", fmt.Sprint(n.Octave), n.LineNumber())
			return nil
		}
	}

	acc, ok := signs.Accidental(n.Accidental)
	if !ok {
		p.unsupported("accidental", n.Accidental.String(), n.LineNumber())
		acc = bsr.AccidentalNone
	}

	current := octave.FromNote(n)
	note := &bsr.Note{
		Value:            value,
		Dots:             n.Dots,
		Octave:           oct,
		OctaveMarkNeeded: octave.MarkNeeded(current, p.reference),
		Accidental:       acc,
		InputLine:        n.LineNumber(),
	}
	p.reference = &current

	smaller := value.Duration.Smaller()
	note.ValueSizeSignNeeded = p.haveLastSize && p.lastSmaller != smaller
	p.haveLastSize, p.lastSmaller = true, smaller

	p.measure.Append(note)
	return nil
}

// insertInLine places a standalone sign before the current measure.
func (p *pass) insertInLine(e bsr.LineElement) {
	p.line.InsertBeforeLast(e)
	p.reference = nil
}

func (p *pass) fill() layout.Fill {
	return layout.Fill{
		LinesOnPage:    len(p.page.Lines),
		MeasuresOnLine: p.line.MeasuresCount(),
		LineEmpty:      p.line.Empty(),
		PageEmpty:      len(p.page.Lines) == 1 && p.line.Empty(),
	}
}

func (p *pass) apply(a layout.Action) {
	switch a {
	case layout.NewLine:
		p.line = p.page.NewLine(p.cfg.CellsPerLine)
	case layout.NewPage:
		p.page = p.score.NewPage(p.cfg.LinesPerPage)
		p.line = p.page.NewLine(p.cfg.CellsPerLine)
	default:
		return
	}
	p.resetLineContext()
}

func (p *pass) resetLineContext() {
	p.reference = nil
	p.haveLastSize = false
}

func (p *pass) unsupported(construct, value string, inputLine int) {
	p.warnings++
	p.emit(Event{
		Message:   fmt.Sprintf("%s %s is not supported in braille", construct, value),
		Level:     LevelWarning,
		InputLine: inputLine,
	})
}

func (p *pass) verbose(msg string, inputLine int) {
	p.emit(Event{Message: msg, Level: LevelVerbose, InputLine: inputLine})
}

func describeKey(k *msr.Key) string {
	if k.System != msr.KeySystemTraditional {
		return k.System.String()
	}
	parts := []string{k.Tonic.String()}
	if k.Alteration != msr.AlterationNatural {
		parts = append(parts, k.Alteration.String())
	}
	parts = append(parts, k.Mode.String())
	return strings.Join(parts, " ")
}
