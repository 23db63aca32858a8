// Package braille writes braille scores as text files.
//
// The Encoder renders each cell either as a North American Braille ASCII
// character (.brf files, understood by embossers) or as a Unicode braille
// pattern, then encodes the text:
//
//	enc := braille.NewEncoder(braille.Config{
//		Encoding:           braille.EncodingUTF16,
//		ByteOrderMark:      true,
//		EncodingInFileName: true,
//	})
//	data, err := enc.Encode(score)
//	name := enc.OutputFileName("minuet") // minuet_utf16_bom.txt
//
// UTF-16 output is big endian and goes through golang.org/x/text.
//
// Validate compares each rendered line with the capacity the translator
// declared for it; the translator counts measures, not cells, so long
// measures may overflow.
package braille
