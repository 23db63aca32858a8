// Package layout decides where braille lines and pages begin.
//
// The policy counts measures per line and lines per page; it does not
// measure rendered width. Breaks requested by the score always win over
// the counted thresholds.
package layout
