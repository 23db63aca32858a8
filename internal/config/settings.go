package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grame-cncm/libmusicxml-sub019/internal/braille"
	"github.com/grame-cncm/libmusicxml-sub019/internal/translate"
)

// Settings holds all configuration options.
type Settings struct {
	// Page geometry
	CellsPerLine    int `json:"cells_per_line"`
	MeasuresPerLine int `json:"measures_per_line"`
	LinesPerPage    int `json:"lines_per_page"`

	// Translation
	IncludeClefs           bool `json:"include_clefs"`
	NoTempos               bool `json:"no_tempos"`
	NoBrailleMusicHeadings bool `json:"no_braille_music_headings"`

	// Output
	OutputPath         string `json:"output_path"`     // {dir} is the directory of the score file
	OutputEncoding     string `json:"output_encoding"` // ascii, utf8, utf16
	ByteOrderMark      bool   `json:"byte_order_mark"`
	EncodingInFileName bool   `json:"encoding_in_file_name"`

	// Batch
	MaxConcurrentScores int `json:"max_concurrent_scores"`

	// History
	RecordHistory bool   `json:"record_history"`
	HistoryDBPath string `json:"history_db_path"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		CellsPerLine:    30,
		MeasuresPerLine: 7,
		LinesPerPage:    27,

		IncludeClefs: true,

		OutputPath:     "{dir}",
		OutputEncoding: "utf8",

		MaxConcurrentScores: 4,

		HistoryDBPath: "msr2braille.sqlite3",
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the values that would make a run meaningless.
func (s *Settings) Validate() error {
	if err := s.ToTranslateConfig().Validate(); err != nil {
		return err
	}
	if _, err := braille.ParseEncoding(s.OutputEncoding); err != nil {
		return err
	}
	if s.MaxConcurrentScores <= 0 {
		return fmt.Errorf("max concurrent scores must be positive, got %d", s.MaxConcurrentScores)
	}
	if s.RecordHistory && s.HistoryDBPath == "" {
		return fmt.Errorf("history database path is required when recording history")
	}
	return nil
}

// ToTranslateConfig converts settings to a translate.Config.
func (s *Settings) ToTranslateConfig() translate.Config {
	cfg := translate.DefaultConfig()
	cfg.CellsPerLine = s.CellsPerLine
	cfg.MeasuresPerLine = s.MeasuresPerLine
	cfg.LinesPerPage = s.LinesPerPage
	cfg.IncludeClefs = s.IncludeClefs
	cfg.NoTempos = s.NoTempos
	cfg.NoBrailleMusicHeadings = s.NoBrailleMusicHeadings
	return cfg
}

// ToEncoderConfig converts settings to a braille.Config.
func (s *Settings) ToEncoderConfig() braille.Config {
	encoding, err := braille.ParseEncoding(s.OutputEncoding)
	if err != nil {
		encoding = braille.EncodingUTF8
	}

	return braille.Config{
		Encoding:           encoding,
		ByteOrderMark:      s.ByteOrderMark,
		EncodingInFileName: s.EncodingInFileName,
	}
}

// OutputDir resolves OutputPath for a score file.
func (s *Settings) OutputDir(scorePath string) string {
	out := s.OutputPath
	if out == "" {
		out = "{dir}"
	}
	return filepath.Clean(strings.ReplaceAll(out, "{dir}", filepath.Dir(scorePath)))
}
