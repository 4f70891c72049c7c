//go:build !windows

package native

import "log"

// OpenFile is not available on this platform.
func OpenFile() (string, bool) {
	log.Printf("Native: common dialog requested on non-Windows platform")
	return "", false
}

// OpenFiles is not available on this platform.
func OpenFiles() ([]string, bool) {
	log.Printf("Native: common dialog requested on non-Windows platform")
	return nil, false
}

// SaveFile is not available on this platform.
func SaveFile() (string, bool) {
	log.Printf("Native: common dialog requested on non-Windows platform")
	return "", false
}

// OpenFolder is not available on this platform.
func OpenFolder() (string, bool, error) {
	log.Printf("Native: shell item dialog requested on non-Windows platform")
	return "", false, nil
}

// OpenFolders is not available on this platform.
func OpenFolders() ([]string, bool, error) {
	log.Printf("Native: shell item dialog requested on non-Windows platform")
	return nil, false, nil
}
