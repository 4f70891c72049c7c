// Package parse turns raw dialog output into selected paths: delimited helper
// output on macOS/Linux and the NUL-separated buffer block written by the
// legacy Windows common dialog.
package parse

import "strings"

// Separators used by the helpers.
const (
	SepAppleScript = ":" // POSIX paths never contain a colon
	SepZenity      = "|"
	SepKDialog     = "\n" // --separate-output
)

// SplitPaths splits helper output on sep. Empty segments are dropped and nil
// is returned when nothing is left, so callers never see an empty list.
func SplitPaths(out, sep string) []string {
	if out == "" {
		return nil
	}
	var paths []string
	for _, p := range strings.Split(out, sep) {
		p = strings.TrimRight(p, "\r")
		if p == "" {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}
