// Package octave decides when a braille note needs an octave mark.
//
// The rule uses the diatonic distance between a note and the note written
// before it (the reference):
//
//   - a third or less never needs a mark;
//   - a fourth or a fifth needs one only when the octave changes;
//   - a sixth or more always needs one.
//
// Without a reference, at the start of a line or after a word or a key or
// time change, every pitched note is marked. Rests are never marked.
package octave
