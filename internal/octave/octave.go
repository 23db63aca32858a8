package octave

import "github.com/grame-cncm/libmusicxml-sub019/internal/msr"

// Pitch is the part of a note the rule looks at.
type Pitch struct {
	Rest   bool
	Step   msr.DiatonicPitch
	Octave int
}

// FromNote extracts the Pitch of a score note.
func FromNote(n *msr.Note) Pitch {
	return Pitch{Rest: n.Rest, Step: n.Step, Octave: n.Octave}
}

// Ordinal numbers diatonic steps continuously across octaves.
func (p Pitch) Ordinal() int {
	return p.Octave*7 + p.Step.Index()
}

// MarkNeeded reports whether current must carry an octave mark given the
// reference; a nil reference means there is none.
func MarkNeeded(current Pitch, reference *Pitch) bool {
	if current.Rest {
		return false
	}
	if reference == nil || reference.Rest {
		return true
	}

	delta := current.Ordinal() - reference.Ordinal()
	if delta < 0 {
		delta = -delta
	}

	switch {
	case delta <= 2:
		return false
	case delta <= 4:
		return current.Octave != reference.Octave
	default:
		return true
	}
}
