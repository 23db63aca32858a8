package scorefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grame-cncm/libmusicxml-sub019/internal/msr"
	"github.com/grame-cncm/libmusicxml-sub019/internal/scorefile/dto"
)

// Format is the serialization of a score file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported score file extension %q", filepath.Ext(path))
	}
}

// Load reads and parses a score file.
func Load(path string) (*msr.Score, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read score file: %w", err)
	}

	score, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return score, nil
}

// Parse decodes a score document.
func Parse(data []byte, format Format) (*msr.Score, error) {
	var doc dto.Document

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse score JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse score YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown score format %s", format)
	}

	if len(doc.PartGroups) == 0 && len(doc.Parts) == 0 {
		return nil, fmt.Errorf("score has no parts")
	}

	score, err := doc.ToScore()
	if err != nil {
		return nil, fmt.Errorf("invalid score: %w", err)
	}
	return score, nil
}
