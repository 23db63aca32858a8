// Package ioutils provides file system utilities for msr2braille.
//
// # Output Files
//
//	// Write a braille file next to its score, creating the directory
//	path, err := ioutils.WriteOutput(ctx, "/scores/braille", "minuet.brf", data)
//
// WriteOutput writes to a temporary file in the target directory and renames
// it, so readers never see a half written braille file.
//
// # Score Discovery
//
//	files, err := ioutils.ExpandInputs([]string{"minuet.yaml", "/scores/bach"})
//
// Directories are scanned (not recursively) for .json, .yaml and .yml files.
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName("Minuet: G major") // Returns "Minuet_ G major"
package ioutils
