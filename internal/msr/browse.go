package msr

import (
	"errors"
	"fmt"
)

var (
	// ErrNoScore is returned when Browse is given a nil score.
	ErrNoScore = errors.New("no score to browse")
	// ErrMissingNode is returned when a child in the tree is nil.
	ErrMissingNode = errors.New("missing node")
)

// Visitor receives one callback per construct, in document order.
type Visitor interface {
	VisitScoreStart(s *Score) error
	VisitScoreEnd(s *Score) error
	VisitPartGroupStart(g *PartGroup) error
	VisitPartGroupEnd(g *PartGroup) error
	VisitPartStart(p *Part) error
	VisitPartEnd(p *Part) error
	VisitStaffStart(s *Staff) error
	VisitStaffEnd(s *Staff) error
	VisitVoiceStart(v *Voice) error
	VisitVoiceEnd(v *Voice) error
	VisitMeasureStart(m *Measure) error
	VisitMeasureEnd(m *Measure) error

	VisitNote(n *Note) error
	VisitClef(c *Clef) error
	VisitKey(k *Key) error
	VisitTime(t *Time) error
	VisitBarline(b *Barline) error
	VisitDynamics(d *Dynamics) error
	VisitTempo(t *Tempo) error
	VisitWords(w *Words) error
	VisitLineBreak(b *LineBreak) error
	VisitPageBreak(b *PageBreak) error
}

// BaseVisitor implements every Visitor method as a no-op.
type BaseVisitor struct{}

func (BaseVisitor) VisitScoreStart(*Score) error         { return nil }
func (BaseVisitor) VisitScoreEnd(*Score) error           { return nil }
func (BaseVisitor) VisitPartGroupStart(*PartGroup) error { return nil }
func (BaseVisitor) VisitPartGroupEnd(*PartGroup) error   { return nil }
func (BaseVisitor) VisitPartStart(*Part) error           { return nil }
func (BaseVisitor) VisitPartEnd(*Part) error             { return nil }
func (BaseVisitor) VisitStaffStart(*Staff) error         { return nil }
func (BaseVisitor) VisitStaffEnd(*Staff) error           { return nil }
func (BaseVisitor) VisitVoiceStart(*Voice) error         { return nil }
func (BaseVisitor) VisitVoiceEnd(*Voice) error           { return nil }
func (BaseVisitor) VisitMeasureStart(*Measure) error     { return nil }
func (BaseVisitor) VisitMeasureEnd(*Measure) error       { return nil }
func (BaseVisitor) VisitNote(*Note) error                { return nil }
func (BaseVisitor) VisitClef(*Clef) error                { return nil }
func (BaseVisitor) VisitKey(*Key) error                  { return nil }
func (BaseVisitor) VisitTime(*Time) error                { return nil }
func (BaseVisitor) VisitBarline(*Barline) error          { return nil }
func (BaseVisitor) VisitDynamics(*Dynamics) error        { return nil }
func (BaseVisitor) VisitTempo(*Tempo) error              { return nil }
func (BaseVisitor) VisitWords(*Words) error              { return nil }
func (BaseVisitor) VisitLineBreak(*LineBreak) error      { return nil }
func (BaseVisitor) VisitPageBreak(*PageBreak) error      { return nil }

// Browse walks the score in document order:
// score → part groups → parts → staves → voices → measures → elements.
func Browse(s *Score, v Visitor) error {
	if s == nil {
		return ErrNoScore
	}
	if err := v.VisitScoreStart(s); err != nil {
		return err
	}
	for i, g := range s.PartGroups {
		if g == nil {
			return fmt.Errorf("part group %d: %w", i+1, ErrMissingNode)
		}
		if err := browsePartGroup(g, v); err != nil {
			return err
		}
	}
	return v.VisitScoreEnd(s)
}

func browsePartGroup(g *PartGroup, v Visitor) error {
	if err := v.VisitPartGroupStart(g); err != nil {
		return err
	}
	for i, p := range g.Parts {
		if p == nil {
			return fmt.Errorf("part %d of group %q: %w", i+1, g.Name, ErrMissingNode)
		}
		if err := v.VisitPartStart(p); err != nil {
			return err
		}
		for i, st := range p.Staves {
			if st == nil {
				return fmt.Errorf("staff %d of part %s: %w", i+1, p.ID, ErrMissingNode)
			}
			if err := browseStaff(st, v); err != nil {
				return err
			}
		}
		if err := v.VisitPartEnd(p); err != nil {
			return err
		}
	}
	return v.VisitPartGroupEnd(g)
}

func browseStaff(st *Staff, v Visitor) error {
	if err := v.VisitStaffStart(st); err != nil {
		return err
	}
	for i, voice := range st.Voices {
		if voice == nil {
			return fmt.Errorf("voice %d of staff %d: %w", i+1, st.Number, ErrMissingNode)
		}
		if err := v.VisitVoiceStart(voice); err != nil {
			return err
		}
		for i, m := range voice.Measures {
			if m == nil {
				return fmt.Errorf("measure %d of voice %d: %w", i+1, voice.Number, ErrMissingNode)
			}
			if err := browseMeasure(m, v); err != nil {
				return err
			}
		}
		if err := v.VisitVoiceEnd(voice); err != nil {
			return err
		}
	}
	return v.VisitStaffEnd(st)
}

func browseMeasure(m *Measure, v Visitor) error {
	if err := v.VisitMeasureStart(m); err != nil {
		return err
	}
	for i, e := range m.Elements {
		if e == nil {
			return fmt.Errorf("element %d of measure %s: %w", i+1, m.Number, ErrMissingNode)
		}
		if err := e.accept(v); err != nil {
			return err
		}
	}
	return v.VisitMeasureEnd(m)
}
