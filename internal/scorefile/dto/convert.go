package dto

import (
	"fmt"

	"github.com/grame-cncm/libmusicxml-sub019/internal/msr"
)

// ToScore converts the document into a score model. Unknown names are
// errors; values the score model knows but braille does not are left for
// the translator to report.
func (d *Document) ToScore() (*msr.Score, error) {
	score := &msr.Score{
		Source:    msr.Source{InputLine: d.Line},
		WorkTitle: d.Title,
	}

	groups := d.PartGroups
	if len(d.Parts) > 0 {
		groups = append(groups, PartGroup{Parts: d.Parts})
	}

	for _, g := range groups {
		group := &msr.PartGroup{Name: g.Name}
		for _, p := range g.Parts {
			part, err := p.toPart()
			if err != nil {
				return nil, fmt.Errorf("part %s: %w", p.ID, err)
			}
			group.Parts = append(group.Parts, part)
		}
		score.PartGroups = append(score.PartGroups, group)
	}

	return score, nil
}

func (p *Part) toPart() (*msr.Part, error) {
	part := &msr.Part{ID: p.ID, Name: p.Name}
	for _, st := range p.Staves {
		staff := &msr.Staff{Number: st.Number}
		for _, v := range st.Voices {
			voice := &msr.Voice{Number: v.Number}
			for _, m := range v.Measures {
				measure, err := m.toMeasure()
				if err != nil {
					return nil, fmt.Errorf("staff %d voice %d measure %s: %w", st.Number, v.Number, m.Number, err)
				}
				voice.Measures = append(voice.Measures, measure)
			}
			staff.Voices = append(staff.Voices, voice)
		}
		part.Staves = append(part.Staves, staff)
	}
	return part, nil
}

func (m *Measure) toMeasure() (*msr.Measure, error) {
	measure := &msr.Measure{Number: string(m.Number)}
	for i, e := range m.Elements {
		el, err := e.ToElement()
		if err != nil {
			line := e.Line
			if line == 0 {
				line = m.Line
			}
			return nil, fmt.Errorf("element %d (line %d): %w", i+1, line, err)
		}
		measure.Elements = append(measure.Elements, el)
	}
	return measure, nil
}

// ToElement converts one element record.
func (e *Element) ToElement() (msr.Element, error) {
	src := msr.Source{InputLine: e.Line}

	switch e.Kind {
	case "note", "rest":
		return e.toNote(src)

	case "clef":
		kind, err := msr.ParseClef(e.Clef)
		if err != nil {
			return nil, err
		}
		return &msr.Clef{Source: src, Kind: kind}, nil

	case "key":
		system, err := msr.ParseKeySystem(e.System)
		if err != nil {
			return nil, err
		}
		tonic, err := msr.ParseDiatonicPitch(e.Tonic)
		if err != nil {
			return nil, err
		}
		alteration, err := msr.ParseAlteration(e.Alteration)
		if err != nil {
			return nil, err
		}
		mode, err := msr.ParseKeyMode(e.Mode)
		if err != nil {
			return nil, err
		}
		return &msr.Key{Source: src, System: system, Tonic: tonic, Alteration: alteration, Mode: mode}, nil

	case "time":
		symbol, err := msr.ParseTimeSymbol(e.Symbol)
		if err != nil {
			return nil, err
		}
		t := &msr.Time{Source: src, Symbol: symbol}
		for _, item := range e.Items {
			t.Items = append(t.Items, msr.TimeItem{Beats: item.Beats, BeatValue: item.BeatValue})
		}
		return t, nil

	case "barline":
		style, err := msr.ParseBarlineStyle(e.Style)
		if err != nil {
			return nil, err
		}
		return &msr.Barline{Source: src, Style: style}, nil

	case "dynamics":
		if e.Dynamics == "" {
			return nil, fmt.Errorf("dynamics element without dynamics")
		}
		return &msr.Dynamics{Source: src, Kind: e.Dynamics}, nil

	case "tempo":
		t := &msr.Tempo{Source: src, Words: e.Text, BeatUnitDots: e.BeatUnitDots, PerMinute: e.PerMinute}
		if e.BeatUnit != "" {
			unit, err := msr.ParseDuration(e.BeatUnit)
			if err != nil {
				return nil, err
			}
			t.BeatUnit = unit
		} else if e.PerMinute > 0 {
			t.BeatUnit = msr.DurationQuarter
		}
		return t, nil

	case "words":
		return &msr.Words{Source: src, Text: e.Text}, nil

	case "line-break":
		return &msr.LineBreak{Source: src}, nil

	case "page-break":
		return &msr.PageBreak{Source: src}, nil

	default:
		return nil, fmt.Errorf("unknown element kind %q", e.Kind)
	}
}

func (e *Element) toNote(src msr.Source) (*msr.Note, error) {
	duration, err := msr.ParseDuration(e.Duration)
	if err != nil {
		return nil, err
	}
	n := &msr.Note{
		Source:   src,
		Rest:     e.Kind == "rest",
		Octave:   e.Octave,
		Duration: duration,
		Dots:     e.Dots,
		InChord:  e.Chord,
		Words:    e.Words,
	}
	if n.Rest {
		return n, nil
	}

	if n.Step, err = msr.ParseDiatonicPitch(e.Step); err != nil {
		return nil, err
	}
	if n.Accidental, err = msr.ParseAccidental(e.Accidental); err != nil {
		return nil, err
	}
	return n, nil
}
