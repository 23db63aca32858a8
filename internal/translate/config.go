package translate

import (
	"fmt"

	"github.com/grame-cncm/libmusicxml-sub019/internal/layout"
)

// Config is the immutable configuration of a translation.
type Config struct {
	CellsPerLine    int
	MeasuresPerLine int
	LinesPerPage    int

	// IncludeClefs writes clef changes met after the first clef.
	IncludeClefs bool
	// NoTempos drops every tempo indication.
	NoTempos bool
	// NoBrailleMusicHeadings writes the initial clef, key, time and tempo
	// inline instead of in the music heading.
	NoBrailleMusicHeadings bool

	// Provenance is recorded as the transcription note of the score.
	Provenance string
}

// DefaultConfig returns the usual braille page geometry.
func DefaultConfig() Config {
	return Config{
		CellsPerLine:    30,
		MeasuresPerLine: 7,
		LinesPerPage:    27,
		IncludeClefs:    true,
		Provenance:      "Generated by msr2braille",
	}
}

// Capacities returns the page geometry for the layout policy.
func (c Config) Capacities() layout.Capacities {
	return layout.Capacities{
		CellsPerLine:    c.CellsPerLine,
		MeasuresPerLine: c.MeasuresPerLine,
		LinesPerPage:    c.LinesPerPage,
	}
}

// Validate checks the page geometry.
func (c Config) Validate() error {
	if err := c.Capacities().Validate(); err != nil {
		return fmt.Errorf("invalid translate config: %w", err)
	}
	return nil
}
