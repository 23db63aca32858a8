// Package bsr defines the braille model produced by the translator.
//
// The braille model is a strictly owned tree:
//
//	Score
//	├── TranscriptionNotes
//	└── Page (numbered from 1)
//	    ├── PageHeading   (first page only)
//	    ├── MusicHeading  (first page only: initial tempo, key, time, clef)
//	    └── Line (numbered from 1 within the page)
//	        └── LineElement: Measure or standalone Sign
//	            └── Sign (Note, Clef, Key, Time, Barline, Dynamics, Words, Tempo)
//
// Children are created through their parent (Score.NewPage, Page.NewLine,
// Line.NewMeasure) so that every node is attached exactly once.
//
// # Insertion Order
//
// A Line normally receives measures in document order. Key, time and tempo
// changes met while a measure is already open must appear before that
// measure, so they are placed with Line.InsertBeforeLast rather than
// appended:
//
//	line.NewMeasure("3")
//	line.InsertBeforeLast(&bsr.Key{Kind: bsr.KeySharps, Count: 2})
//	// line elements: [..., Key, Measure 3]
//
// # Cells
//
// Every sign knows its braille rendering as Cells, a sequence of six-dot
// cells. Cell.Rune returns the Unicode braille pattern (U+2800 block) for
// a cell; the text encoders in package braille build on that.
package bsr
