package parse

import (
	"strings"
	"unicode/utf16"
)

// LeadingString returns the first NUL-terminated string in buf. A buffer with
// no terminator is read to its end.
func LeadingString(buf []uint16) string {
	s, _ := segment(buf, 0)
	return s
}

// MultiSelect decodes the block written by GetOpenFileName with
// OFN_ALLOWMULTISELECT|OFN_EXPLORER:
//
//	dir\0name1\0name2\0\0
//
// Every name is joined onto dir. When only one file was chosen the API omits
// the name list and the first segment is already the full path:
//
//	C:\dir\a.txt\0\0
//
// Scanning stops at the empty segment or at the end of buf, whichever comes
// first.
func MultiSelect(buf []uint16) []string {
	dir, next := segment(buf, 0)
	if dir == "" {
		return nil
	}

	var paths []string
	for next < len(buf) {
		name, after := segment(buf, next)
		if name == "" {
			break
		}
		paths = append(paths, JoinWindows(dir, name))
		next = after
	}

	if len(paths) == 0 {
		return []string{dir}
	}
	return paths
}

// segment decodes buf[start:] up to the next NUL and returns the index just
// past that NUL (or len(buf) when there is none).
func segment(buf []uint16, start int) (string, int) {
	if start >= len(buf) {
		return "", len(buf)
	}
	end := start
	for end < len(buf) && buf[end] != 0 {
		end++
	}
	s := string(utf16.Decode(buf[start:end]))
	if end < len(buf) {
		end++
	}
	return s, end
}

// JoinWindows joins a directory and a file name with a backslash. It does not
// depend on the host OS so the buffer decoding is identical everywhere.
func JoinWindows(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, `\`) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + `\` + name
}
