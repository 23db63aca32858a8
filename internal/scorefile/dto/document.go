package dto

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Document is the serialized form of a score.
type Document struct {
	Title      string      `json:"title" yaml:"title"`
	Line       int         `json:"line,omitempty" yaml:"line,omitempty"`
	PartGroups []PartGroup `json:"part_groups,omitempty" yaml:"part_groups,omitempty"`

	// Parts without a group end up in one implicit group.
	Parts []Part `json:"parts,omitempty" yaml:"parts,omitempty"`
}

// PartGroup groups parts, e.g. the staves of a piano system.
type PartGroup struct {
	Name  string `json:"name" yaml:"name"`
	Parts []Part `json:"parts" yaml:"parts"`
}

// Part is one instrument.
type Part struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Staves []Staff `json:"staves" yaml:"staves"`
}

// Staff holds voices.
type Staff struct {
	Number int     `json:"number" yaml:"number"`
	Voices []Voice `json:"voices" yaml:"voices"`
}

// Voice holds measures.
type Voice struct {
	Number   int       `json:"number" yaml:"number"`
	Measures []Measure `json:"measures" yaml:"measures"`
}

// Measure holds elements in document order.
type Measure struct {
	Number   MeasureNumber `json:"number" yaml:"number"`
	Line     int           `json:"line,omitempty" yaml:"line,omitempty"`
	Elements []Element     `json:"elements" yaml:"elements"`
}

// UnmarshalYAML takes the line of the YAML node when none is given.
func (m *Measure) UnmarshalYAML(value *yaml.Node) error {
	type plain Measure
	if err := value.Decode((*plain)(m)); err != nil {
		return err
	}
	if m.Line == 0 {
		m.Line = value.Line
	}
	return nil
}

// MeasureNumber accepts both "12a" and 12.
type MeasureNumber string

// UnmarshalJSON accepts a JSON string or number.
func (n *MeasureNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = MeasureNumber(s)
		return nil
	}

	var i int64
	if err := json.Unmarshal(data, &i); err != nil {
		return fmt.Errorf("measure number must be a string or an integer: %s", data)
	}
	*n = MeasureNumber(strconv.FormatInt(i, 10))
	return nil
}

// UnmarshalYAML accepts any scalar.
func (n *MeasureNumber) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: measure number must be a scalar", value.Line)
	}
	*n = MeasureNumber(value.Value)
	return nil
}

// TimeItem is one beats/beat-value group.
type TimeItem struct {
	Beats     []int `json:"beats" yaml:"beats"`
	BeatValue int   `json:"beat_value" yaml:"beat_value"`
}

// Element is a flat record; Kind tells which fields apply.
type Element struct {
	Kind string `json:"kind" yaml:"kind"`
	Line int    `json:"line,omitempty" yaml:"line,omitempty"`

	// note, rest
	Step       string   `json:"step,omitempty" yaml:"step,omitempty"`
	Octave     int      `json:"octave,omitempty" yaml:"octave,omitempty"`
	Duration   string   `json:"duration,omitempty" yaml:"duration,omitempty"`
	Dots       int      `json:"dots,omitempty" yaml:"dots,omitempty"`
	Accidental string   `json:"accidental,omitempty" yaml:"accidental,omitempty"`
	Chord      bool     `json:"chord,omitempty" yaml:"chord,omitempty"`
	Words      []string `json:"words,omitempty" yaml:"words,omitempty"`

	// clef
	Clef string `json:"clef,omitempty" yaml:"clef,omitempty"`

	// key
	System     string `json:"system,omitempty" yaml:"system,omitempty"`
	Tonic      string `json:"tonic,omitempty" yaml:"tonic,omitempty"`
	Alteration string `json:"alteration,omitempty" yaml:"alteration,omitempty"`
	Mode       string `json:"mode,omitempty" yaml:"mode,omitempty"`

	// time
	Symbol string     `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Items  []TimeItem `json:"items,omitempty" yaml:"items,omitempty"`

	// barline
	Style string `json:"style,omitempty" yaml:"style,omitempty"`

	// dynamics
	Dynamics string `json:"dynamics,omitempty" yaml:"dynamics,omitempty"`

	// tempo, words
	Text         string `json:"text,omitempty" yaml:"text,omitempty"`
	BeatUnit     string `json:"beat_unit,omitempty" yaml:"beat_unit,omitempty"`
	BeatUnitDots int    `json:"beat_unit_dots,omitempty" yaml:"beat_unit_dots,omitempty"`
	PerMinute    int    `json:"per_minute,omitempty" yaml:"per_minute,omitempty"`
}

// UnmarshalYAML takes the line of the YAML node when none is given.
func (e *Element) UnmarshalYAML(value *yaml.Node) error {
	type plain Element
	if err := value.Decode((*plain)(e)); err != nil {
		return err
	}
	if e.Line == 0 {
		e.Line = value.Line
	}
	return nil
}
