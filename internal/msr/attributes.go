package msr

import (
	"fmt"
	"strings"
)

// ClefKind identifies a clef by its sign, staff line and octave change.
type ClefKind int

const (
	ClefNone ClefKind = iota
	ClefTreble
	ClefTrebleMinus15
	ClefTrebleMinus8
	ClefTreblePlus8
	ClefTreblePlus15
	ClefBass
	ClefBassMinus15
	ClefBassMinus8
	ClefBassPlus8
	ClefBassPlus15
	ClefVarbaritone
	ClefSubbass
	ClefFrenchViolin
	ClefSoprano
	ClefMezzoSoprano
	ClefAlto
	ClefTenor
	ClefBaritone
	ClefPercussion
	ClefTablature
	ClefJianpu
)

var clefNames = map[ClefKind]string{
	ClefNone:          "none",
	ClefTreble:        "treble",
	ClefTrebleMinus15: "treble-15",
	ClefTrebleMinus8:  "treble-8",
	ClefTreblePlus8:   "treble+8",
	ClefTreblePlus15:  "treble+15",
	ClefBass:          "bass",
	ClefBassMinus15:   "bass-15",
	ClefBassMinus8:    "bass-8",
	ClefBassPlus8:     "bass+8",
	ClefBassPlus15:    "bass+15",
	ClefVarbaritone:   "varbaritone",
	ClefSubbass:       "subbass",
	ClefFrenchViolin:  "french-violin",
	ClefSoprano:       "soprano",
	ClefMezzoSoprano:  "mezzo-soprano",
	ClefAlto:          "alto",
	ClefTenor:         "tenor",
	ClefBaritone:      "baritone",
	ClefPercussion:    "percussion",
	ClefTablature:     "tablature",
	ClefJianpu:        "jianpu",
}

func (c ClefKind) String() string {
	if name, ok := clefNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseClef parses a clef name such as "treble", "bass-8" or "alto".
func ParseClef(s string) (ClefKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range clefNames {
		if name == s {
			return c, nil
		}
	}
	return ClefNone, fmt.Errorf("unknown clef %q", s)
}

// KeyMode is the mode of a key signature.
type KeyMode int

const (
	ModeMajor KeyMode = iota
	ModeMinor
	ModeIonian
	ModeDorian
	ModePhrygian
	ModeLydian
	ModeMixolydian
	ModeAeolian
	ModeLocrian
)

var modeNames = []string{
	"major", "minor", "ionian", "dorian", "phrygian",
	"lydian", "mixolydian", "aeolian", "locrian",
}

func (m KeyMode) String() string {
	if m < ModeMajor || m > ModeLocrian {
		return "unknown"
	}
	return modeNames[m]
}

// ParseKeyMode parses a mode name; the empty string is major.
func ParseKeyMode(s string) (KeyMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeMajor, nil
	}
	for i, name := range modeNames {
		if name == s {
			return KeyMode(i), nil
		}
	}
	return ModeMajor, fmt.Errorf("unknown key mode %q", s)
}

// KeySystem distinguishes traditional tonic/mode keys from the
// Humdrum/Scot explicit step lists.
type KeySystem int

const (
	KeySystemTraditional KeySystem = iota
	KeySystemHumdrumScot
)

func (k KeySystem) String() string {
	if k == KeySystemHumdrumScot {
		return "humdrum-scot"
	}
	return "traditional"
}

// ParseKeySystem parses a key system name; the empty string is traditional.
func ParseKeySystem(s string) (KeySystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "traditional":
		return KeySystemTraditional, nil
	case "humdrum-scot", "humdrum", "scot":
		return KeySystemHumdrumScot, nil
	}
	return KeySystemTraditional, fmt.Errorf("unknown key system %q", s)
}

// TimeSymbol is the symbol used to display a time signature.
// TimeSymbolNone is a plain numerical signature.
type TimeSymbol int

const (
	TimeSymbolNone TimeSymbol = iota
	TimeSymbolCommon
	TimeSymbolCut
	TimeSymbolNote
	TimeSymbolDottedNote
	TimeSymbolSingleNumber
	TimeSymbolSenzaMisura
)

var timeSymbolNames = []string{
	"none", "common", "cut", "note", "dotted-note", "single-number", "senza-misura",
}

func (t TimeSymbol) String() string {
	if t < TimeSymbolNone || t > TimeSymbolSenzaMisura {
		return "unknown"
	}
	return timeSymbolNames[t]
}

// ParseTimeSymbol parses a time symbol name; "" and "normal" are TimeSymbolNone.
func ParseTimeSymbol(s string) (TimeSymbol, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "normal" {
		return TimeSymbolNone, nil
	}
	for i, name := range timeSymbolNames {
		if name == s {
			return TimeSymbol(i), nil
		}
	}
	return TimeSymbolNone, fmt.Errorf("unknown time symbol %q", s)
}

// BarlineStyle is the MusicXML bar-style of a barline.
type BarlineStyle int

const (
	BarlineStyleNone BarlineStyle = iota
	BarlineStyleRegular
	BarlineStyleDotted
	BarlineStyleDashed
	BarlineStyleHeavy
	BarlineStyleLightLight
	BarlineStyleLightHeavy
	BarlineStyleHeavyLight
	BarlineStyleHeavyHeavy
	BarlineStyleTick
	BarlineStyleShort
)

var barlineStyleNames = []string{
	"none", "regular", "dotted", "dashed", "heavy", "light-light",
	"light-heavy", "heavy-light", "heavy-heavy", "tick", "short",
}

func (b BarlineStyle) String() string {
	if b < BarlineStyleNone || b > BarlineStyleShort {
		return "unknown"
	}
	return barlineStyleNames[b]
}

// ParseBarlineStyle parses a MusicXML bar-style name; "" is regular.
func ParseBarlineStyle(s string) (BarlineStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BarlineStyleRegular, nil
	}
	for i, name := range barlineStyleNames {
		if name == s {
			return BarlineStyle(i), nil
		}
	}
	return BarlineStyleNone, fmt.Errorf("unknown barline style %q", s)
}
