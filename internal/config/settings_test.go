package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grame-cncm/libmusicxml-sub019/internal/braille"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.CellsPerLine != 30 || s.MeasuresPerLine != 7 || s.LinesPerPage != 27 {
		t.Errorf("geometry = %d/%d/%d, want 30/7/27", s.CellsPerLine, s.MeasuresPerLine, s.LinesPerPage)
	}
	if !s.IncludeClefs || s.NoTempos || s.NoBrailleMusicHeadings {
		t.Errorf("unexpected translation defaults: %+v", s)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	s := DefaultSettings()
	s.CellsPerLine = 40
	s.OutputEncoding = "utf16"
	s.ByteOrderMark = true
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CellsPerLine != 40 || got.OutputEncoding != "utf16" || !got.ByteOrderMark {
		t.Errorf("loaded settings = %+v", got)
	}
	if got.MeasuresPerLine != 7 {
		t.Errorf("unset field should keep its default, got %d", got.MeasuresPerLine)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"no_tempos": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.NoTempos || s.LinesPerPage != 27 {
		t.Errorf("settings = %+v", s)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(*Settings) {}, false},
		{"zero cells", func(s *Settings) { s.CellsPerLine = 0 }, true},
		{"negative lines", func(s *Settings) { s.LinesPerPage = -1 }, true},
		{"bad encoding", func(s *Settings) { s.OutputEncoding = "ebcdic" }, true},
		{"no workers", func(s *Settings) { s.MaxConcurrentScores = 0 }, true},
		{"history without path", func(s *Settings) { s.RecordHistory = true; s.HistoryDBPath = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	s := DefaultSettings()
	s.MeasuresPerLine = 5
	s.NoTempos = true
	s.OutputEncoding = "ascii"
	s.EncodingInFileName = true

	tc := s.ToTranslateConfig()
	if tc.MeasuresPerLine != 5 || !tc.NoTempos || tc.CellsPerLine != 30 {
		t.Errorf("ToTranslateConfig() = %+v", tc)
	}

	ec := s.ToEncoderConfig()
	if ec.Encoding != braille.EncodingASCII || !ec.EncodingInFileName {
		t.Errorf("ToEncoderConfig() = %+v", ec)
	}
}

func TestOutputDir(t *testing.T) {
	s := DefaultSettings()
	score := filepath.Join("scores", "bach", "minuet.yaml")

	if got, want := s.OutputDir(score), filepath.Join("scores", "bach"); got != want {
		t.Errorf("OutputDir() = %q, want %q", got, want)
	}

	s.OutputPath = filepath.Join("{dir}", "braille")
	if got, want := s.OutputDir(score), filepath.Join("scores", "bach", "braille"); got != want {
		t.Errorf("OutputDir() = %q, want %q", got, want)
	}
}
