//go:build windows

package native

import (
	"log"
	"unicode/utf16"
	"unsafe"

	"github.com/lxn/win"

	"native-dialogs/src/parse"
)

var allFilesFilter = utf16.Encode([]rune("All Files\x00*.*\x00\x00"))

const (
	openFlags     = win.OFN_FILEMUSTEXIST | win.OFN_EXPLORER
	openManyFlags = win.OFN_FILEMUSTEXIST | win.OFN_ALLOWMULTISELECT | win.OFN_EXPLORER
	saveFlags     = 0
)

// OpenFile shows the common open dialog for a single existing file.
func OpenFile() (string, bool) {
	buf, ok := showCommonDialog(openFlags, false)
	if !ok {
		return "", false
	}
	path := parse.LeadingString(buf)
	return path, path != ""
}

// OpenFiles shows the common open dialog with multiple selection enabled.
func OpenFiles() ([]string, bool) {
	buf, ok := showCommonDialog(openManyFlags, false)
	if !ok {
		return nil, false
	}
	paths := parse.MultiSelect(buf)
	return paths, len(paths) > 0
}

// SaveFile shows the common save dialog.
func SaveFile() (string, bool) {
	buf, ok := showCommonDialog(saveFlags, true)
	if !ok {
		return "", false
	}
	path := parse.LeadingString(buf)
	return path, path != ""
}

// showCommonDialog runs GetOpenFileName or GetSaveFileName synchronously and
// returns the filled buffer. ok is false when the user cancelled or the API
// failed.
func showCommonDialog(flags uint32, save bool) ([]uint16, bool) {
	buf := make([]uint16, BufferLen)

	ofn := win.OPENFILENAME{
		HwndOwner:    ownerWindow(),
		LpstrFilter:  &allFilesFilter[0],
		NFilterIndex: 1,
		LpstrFile:    &buf[0],
		NMaxFile:     uint32(len(buf)),
		Flags:        flags,
	}
	ofn.LStructSize = uint32(unsafe.Sizeof(ofn))

	var accepted bool
	if save {
		log.Printf("Native: GetSaveFileName flags=0x%X", flags)
		accepted = win.GetSaveFileName(&ofn)
	} else {
		log.Printf("Native: GetOpenFileName flags=0x%X", flags)
		accepted = win.GetOpenFileName(&ofn)
	}
	if !accepted {
		// zero means the user closed the dialog; anything else is an API failure
		if code := win.CommDlgExtendedError(); code != 0 {
			log.Printf("Native: common dialog failed, CommDlgExtendedError=0x%X", code)
		} else {
			log.Printf("Native: common dialog cancelled")
		}
		return nil, false
	}
	return buf, true
}
