// Package config provides configuration management for msr2braille.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to translate.Config and braille.Config for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get the usual braille page:
//
//	settings := config.DefaultSettings()
//	// 30 cells per line, 7 measures per line, 27 lines per page
//	// UTF-8 output written next to the score file
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.OutputEncoding = "ascii"
//	err := settings.Save("/path/to/config.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - Page geometry (cells, measures and lines)
//   - Clefs, tempos and music headings
//   - Output directory and text encoding
//   - Concurrent translation limit
//   - Transcription history database
package config
