package parse

import (
	"reflect"
	"testing"
	"unicode/utf16"
)

// block encodes each segment NUL-terminated and pads the rest of a
// fixed-size buffer with zeros, as the dialog buffer would be.
func block(size int, segments ...string) []uint16 {
	buf := make([]uint16, size)
	i := 0
	for _, s := range segments {
		i += copy(buf[i:], utf16.Encode([]rune(s)))
		i++ // terminator
	}
	return buf
}

func TestSplitPaths(t *testing.T) {
	tests := []struct {
		name string
		out  string
		sep  string
		want []string
	}{
		{"applescript colon", "/a:/b:/c", SepAppleScript, []string{"/a", "/b", "/c"}},
		{"zenity pipe", "/a|/b|/c", SepZenity, []string{"/a", "/b", "/c"}},
		{"kdialog newline", "/a\n/b\n/c", SepKDialog, []string{"/a", "/b", "/c"}},
		{"kdialog crlf", "/a\r\n/b", SepKDialog, []string{"/a", "/b"}},
		{"single path", "/only/one", SepZenity, []string{"/only/one"}},
		{"spaces kept", "/a b/c d|/e", SepZenity, []string{"/a b/c d", "/e"}},
		{"empty segments dropped", "/a||/b|", SepZenity, []string{"/a", "/b"}},
		{"empty output", "", SepZenity, nil},
		{"only separators", "::", SepAppleScript, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPaths(tt.out, tt.sep)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitPaths(%q, %q) = %#v, want %#v", tt.out, tt.sep, got, tt.want)
			}
		})
	}
}

func TestMultiSelectDirectoryAndNames(t *testing.T) {
	buf := block(64, `C:\dir`, "a.txt", "b.txt")

	got := MultiSelect(buf)
	want := []string{`C:\dir\a.txt`, `C:\dir\b.txt`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %#v, got %#v", want, got)
	}
}

func TestMultiSelectSingleSelection(t *testing.T) {
	buf := block(64, `C:\dir\a.txt`)

	got := MultiSelect(buf)
	want := []string{`C:\dir\a.txt`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %#v, got %#v", want, got)
	}
}

func TestMultiSelectDriveRoot(t *testing.T) {
	buf := block(32, `C:\`, "a.txt", "b.txt")

	got := MultiSelect(buf)
	want := []string{`C:\a.txt`, `C:\b.txt`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %#v, got %#v", want, got)
	}
}

func TestMultiSelectEmptyBuffer(t *testing.T) {
	if got := MultiSelect(make([]uint16, 16)); got != nil {
		t.Errorf("Expected nil, got %#v", got)
	}
	if got := MultiSelect(nil); got != nil {
		t.Errorf("Expected nil for nil buffer, got %#v", got)
	}
}

func TestMultiSelectUnterminatedBuffer(t *testing.T) {
	// No double terminator: the scanner must stop at the end of the slice.
	buf := utf16.Encode([]rune("C:\\d\x00x.txt\x00y.txt"))

	got := MultiSelect(buf)
	want := []string{`C:\d\x.txt`, `C:\d\y.txt`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %#v, got %#v", want, got)
	}
}

func TestMultiSelectIgnoresDataAfterDoubleTerminator(t *testing.T) {
	buf := block(64, `C:\dir`, "a.txt", "", "stale.txt")

	got := MultiSelect(buf)
	want := []string{`C:\dir\a.txt`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %#v, got %#v", want, got)
	}
}

func TestLeadingString(t *testing.T) {
	tests := []struct {
		name string
		buf  []uint16
		want string
	}{
		{"terminated", block(32, `C:\x\file.txt`), `C:\x\file.txt`},
		{"multi block reads first segment", block(32, `C:\x`, "a", "b"), `C:\x`},
		{"no terminator", utf16.Encode([]rune(`C:\y`)), `C:\y`},
		{"empty", make([]uint16, 8), ""},
		{"unicode", block(32, `C:\Пример\файл.txt`), `C:\Пример\файл.txt`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LeadingString(tt.buf); got != tt.want {
				t.Errorf("LeadingString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoinWindows(t *testing.T) {
	tests := []struct {
		dir, name, want string
	}{
		{`C:\dir`, "a.txt", `C:\dir\a.txt`},
		{`C:\`, "a.txt", `C:\a.txt`},
		{`\\server\share`, "a.txt", `\\server\share\a.txt`},
		{"", "a.txt", "a.txt"},
	}

	for _, tt := range tests {
		if got := JoinWindows(tt.dir, tt.name); got != tt.want {
			t.Errorf("JoinWindows(%q, %q) = %q, want %q", tt.dir, tt.name, got, tt.want)
		}
	}
}
