// Package msr defines the score model consumed by the braille translator.
//
// The score model is a pitch/duration based tree built by an upstream
// parser:
//
//	Score
//	└── PartGroup
//	    └── Part
//	        └── Staff
//	            └── Voice
//	                └── Measure
//	                    └── Element (Note, Clef, Key, Time, Barline,
//	                        Dynamics, Tempo, Words, LineBreak, PageBreak)
//
// The tree is read-only for consumers. Every element carries the line
// number of the construct in the source document so that diagnostics can
// point back at it.
//
// # Traversal
//
// Browse walks a score in strict document order and calls one Visitor
// method per construct kind:
//
//	err := msr.Browse(score, myVisitor)
//
// Embed BaseVisitor to implement only the callbacks you need:
//
//	type counter struct {
//	    msr.BaseVisitor
//	    notes int
//	}
//
//	func (c *counter) VisitNote(n *msr.Note) error {
//	    c.notes++
//	    return nil
//	}
//
// A non-nil error from a callback stops the traversal and is returned by
// Browse unchanged.
//
// # Enumerations
//
// Musical categories (diatonic pitch, graphic duration, accidental, clef,
// key mode, time symbol, barline style) are closed enumerations. Each has
// a String method and a Parse function accepting the MusicXML-style name,
// e.g. ParseDuration("16th") or ParseAccidental("three-quarters-sharp").
package msr
