// Package scorefile loads score models from JSON or YAML documents.
//
// A score document mirrors the score model tree. Elements are flat
// records whose kind selects the meaningful fields:
//
//	title: Minuet
//	parts:
//	  - id: P1
//	    staves:
//	      - number: 1
//	        voices:
//	          - number: 1
//	            measures:
//	              - number: 1
//	                elements:
//	                  - {kind: clef, clef: treble}
//	                  - {kind: key, tonic: G, mode: major}
//	                  - {kind: time, items: [{beats: [3], beat_value: 4}]}
//	                  - {kind: note, step: D, octave: 5, duration: quarter}
//	                  - {kind: rest, duration: half}
//
// Element kinds are note, rest, clef, key, time, barline, dynamics, tempo,
// words, line-break and page-break. Names follow MusicXML ("treble",
// "light-heavy", "flat-flat", "16th").
//
// # Input Lines
//
// Every element may carry a line field, the line of the construct in the
// original notation file; diagnostics refer to it. In YAML documents an
// element without one gets the line of its own YAML node.
//
// # Errors
//
// Unknown element kinds or enum names make loading fail. Values that the
// score model knows but braille cannot render, such as a percussion clef,
// load fine and are reported later by the translator.
package scorefile
