// Package translate turns a score model into a braille model.
//
// A Translator runs one synchronous pass over the score in document order
// and builds a fresh bsr.Score. All state of the pass (current page, line
// and measure, the note used as octave reference, the last value range)
// lives in a context value created by each call to Translate, so a
// Translator can be reused and the same score translated again with the
// same result.
//
// # Usage
//
//	t := translate.New(translate.DefaultConfig(), func(e translate.Event) {
//		fmt.Println(e.Message)
//	})
//	score, err := t.Translate(msrScore)
//
// # Diagnostics
//
// Values that have no braille equivalent (a percussion clef, a Dorian key,
// a 1024th note, a heavy barline) are reported as LevelWarning events of
// the form "clef percussion is not supported in braille", carrying the
// input line. The sign is left out and the pass goes on.
//
// A missing score, or a nil node inside it, is fatal: Translate returns a
// *FatalError together with whatever braille was produced so far.
//
// # Front Matter
//
// The first clef, key, time and tempo of the score go to the music heading
// of page 1 unless NoBrailleMusicHeadings is set. Later key, time and tempo
// changes are inserted in the current line before its last measure; later
// clefs are written inside the measure when IncludeClefs is set.
package translate
