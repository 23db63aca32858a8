// Package signs maps score-model values to their braille equivalents.
//
// Every function is pure. Partial mappings return an extra ok result that
// is false when the value has no braille rendering; callers report those
// values as unsupported and omit the sign:
//
//	value, ok := signs.PitchDuration(n.Step, n.Duration, n.Rest)
//	if !ok {
//		// warn "duration 1024th is not supported in braille"
//	}
//
// Key signatures follow the circle of fifths for the traditional major and
// minor system only. Modal keys and the Humdrum/Scot system have no entry.
package signs
