//go:build windows

package native

import (
	"log"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

// ownerWindow returns the console window of this process. Owning the dialog
// with it makes the dialog surface above the console instead of behind it.
// Zero (no console) lets the dialog float unowned.
func ownerWindow() win.HWND {
	if err := procGetConsoleWindow.Find(); err != nil {
		log.Printf("Native: GetConsoleWindow unavailable: %v", err)
		return 0
	}
	hwnd, _, _ := procGetConsoleWindow.Call()
	return win.HWND(hwnd)
}
