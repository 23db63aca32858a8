package braille

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/grame-cncm/libmusicxml-sub019/internal/bsr"
)

// Encoding represents the supported output text encodings.
//
//   - ASCII: North American Braille ASCII, one printable character per cell
//   - UTF8: Unicode braille patterns (U+2800 block) in UTF-8
//   - UTF16: Unicode braille patterns in big-endian UTF-16
type Encoding int

const (
	// EncodingASCII writes .brf files for embossers and refreshable displays.
	EncodingASCII Encoding = iota

	// EncodingUTF8 writes Unicode braille in UTF-8.
	EncodingUTF8

	// EncodingUTF16 writes Unicode braille in UTF-16 BE, optionally with a BOM.
	EncodingUTF16
)

func (e Encoding) String() string {
	switch e {
	case EncodingASCII:
		return "ascii"
	case EncodingUTF8:
		return "utf8"
	case EncodingUTF16:
		return "utf16"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// ParseEncoding parses "ascii", "utf8" or "utf16".
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "")) {
	case "ascii", "brf":
		return EncodingASCII, nil
	case "utf8", "":
		return EncodingUTF8, nil
	case "utf16":
		return EncodingUTF16, nil
	default:
		return EncodingUTF8, fmt.Errorf("unknown braille encoding %q", s)
	}
}

// Extension returns the file extension including the dot.
func (e Encoding) Extension() string {
	if e == EncodingASCII {
		return ".brf"
	}
	return ".txt"
}

// brailleASCII maps a six-dot pattern to its North American Braille ASCII character.
const brailleASCII = " A1B'K2L@CIF/MSP\"E3H9O6R^DJG>NTQ,*5<-U8V.%[$+X!&;:4\\0Z7(_?W]#Y)="

// Config holds encoder options.
type Config struct {
	Encoding Encoding

	// ByteOrderMark prefixes UTF-16 output with a BOM; other encodings ignore it.
	ByteOrderMark bool

	// EncodingInFileName appends the encoding to output file names.
	EncodingInFileName bool
}

// Encoder serializes braille scores to text.
//
// Pages are separated by a form feed; each braille line ends with a newline.
// The first page starts with the transcription notes, the title heading
// and the music heading when they are present.
//
// Example:
//
//	enc := braille.NewEncoder(braille.Config{Encoding: braille.EncodingASCII})
//	data, err := enc.Encode(score)
//	os.WriteFile(enc.OutputFileName("minuet"), data, 0644)
type Encoder struct {
	cfg Config
}

// NewEncoder creates an Encoder.
func NewEncoder(cfg Config) *Encoder {
	return &Encoder{cfg: cfg}
}

// Encoding returns the text encoding of the output.
func (e *Encoder) Encoding() Encoding {
	return e.cfg.Encoding
}

// Render returns the score as text: Braille ASCII for EncodingASCII,
// Unicode braille otherwise.
func (e *Encoder) Render(s *bsr.Score) string {
	var sb strings.Builder

	for i, page := range s.Pages {
		if i > 0 {
			sb.WriteString("\f")
		}
		if i == 0 {
			for _, note := range s.TranscriptionNotes {
				e.writeLine(&sb, bsr.Text(note.Text))
			}
		}
		if page.Heading != nil {
			e.writeLine(&sb, page.Heading.Cells())
		}
		if page.MusicHeading != nil && !page.MusicHeading.Empty() {
			e.writeLine(&sb, page.MusicHeading.Cells())
		}
		for _, line := range page.Lines {
			e.writeLine(&sb, line.Cells())
		}
	}

	return sb.String()
}

func (e *Encoder) writeLine(sb *strings.Builder, cells bsr.Cells) {
	for _, c := range cells {
		if e.cfg.Encoding == EncodingASCII {
			sb.WriteByte(brailleASCII[c&0x3f])
		} else {
			sb.WriteRune(c.Rune())
		}
	}
	sb.WriteString("\n")
}

// Encode renders the score and converts it to the configured encoding.
func (e *Encoder) Encode(s *bsr.Score) ([]byte, error) {
	text := e.Render(s)

	switch e.cfg.Encoding {
	case EncodingASCII, EncodingUTF8:
		return []byte(text), nil
	case EncodingUTF16:
		bom := unicode.IgnoreBOM
		if e.cfg.ByteOrderMark {
			bom = unicode.UseBOM
		}
		out, _, err := transform.Bytes(unicode.UTF16(unicode.BigEndian, bom).NewEncoder(), []byte(text))
		if err != nil {
			return nil, fmt.Errorf("failed to encode UTF-16: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown braille encoding %s", e.cfg.Encoding)
	}
}

// OutputFileName appends the optional encoding tag and the extension to base.
//
//	OutputFileName("minuet") // "minuet_utf16_bom.txt" for tagged UTF-16 with BOM
func (e *Encoder) OutputFileName(base string) string {
	name := base
	if e.cfg.EncodingInFileName {
		name += "_" + e.cfg.Encoding.String()
		if e.cfg.Encoding == EncodingUTF16 && e.cfg.ByteOrderMark {
			name += "_bom"
		}
	}
	return name + e.cfg.Encoding.Extension()
}

// Overflow is a line whose rendered width exceeds its declared capacity.
type Overflow struct {
	Page     int
	Line     int
	Cells    int
	Capacity int
}

func (o Overflow) String() string {
	return fmt.Sprintf("page %d line %d: %d cells for a capacity of %d", o.Page, o.Line, o.Cells, o.Capacity)
}

// Validate reports every line wider than its capacity.
func Validate(s *bsr.Score) []Overflow {
	var out []Overflow
	for _, page := range s.Pages {
		for _, line := range page.Lines {
			if over := line.Overflow(); over > 0 {
				out = append(out, Overflow{
					Page:     page.Number,
					Line:     line.Number,
					Cells:    line.CellsCapacity + over,
					Capacity: line.CellsCapacity,
				})
			}
		}
	}
	return out
}
