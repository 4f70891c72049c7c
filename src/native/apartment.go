// Package native talks to the Windows dialog APIs: the legacy common dialog
// (comdlg32) for files and the shell item dialog (IFileOpenDialog) for
// folders. On other systems every call reports no result.
package native

import (
	"errors"
	"fmt"
)

// ErrApartmentInvariant means COM on the dialog thread was not in the state
// the folder picker requires. It is never recoverable.
var ErrApartmentInvariant = errors.New("unexpected COM apartment state")

// HRESULT values returned by CoInitializeEx and the dialog.
const (
	hrOK            uintptr = 0x00000000
	hrFalse         uintptr = 0x00000001 // already initialized in the same mode
	hrChangedMode   uintptr = 0x80010106 // RPC_E_CHANGED_MODE
	hrUserCancelled uintptr = 0x800704C7 // HRESULT_FROM_WIN32(ERROR_CANCELLED)
)

// Shell item dialog identifiers.
const (
	CLSIDFileOpenDialog = "{DC1C5A9C-E88A-4dde-A5A1-60F82A20AEF7}"
	IIDFileOpenDialog   = "{D57C7288-D4AD-4768-BE02-9D969532D960}"
)

// BufferLen is the capacity, in UTF-16 code units, of the common dialog
// file name buffer.
const BufferLen = 65536

// ClassifyApartmentInit checks the HRESULT of the dialog's own
// CoInitializeEx call. The worker thread has already entered a
// single-threaded apartment, so the only acceptable answer is S_FALSE.
// S_OK means the apartment was not set up beforehand, RPC_E_CHANGED_MODE
// means the thread is in a multithreaded apartment.
func ClassifyApartmentInit(hr uintptr) error {
	switch hr {
	case hrFalse:
		return nil
	case hrOK:
		return fmt.Errorf("%w: CoInitializeEx initialized a fresh apartment on the dialog thread", ErrApartmentInvariant)
	case hrChangedMode:
		return fmt.Errorf("%w: dialog thread is in a conflicting (multithreaded) apartment", ErrApartmentInvariant)
	default:
		return fmt.Errorf("%w: CoInitializeEx returned 0x%08X", ErrApartmentInvariant, uint32(hr))
	}
}

// classifyThreadSetup checks the worker's first CoInitializeEx call, which
// normally initializes the apartment.
func classifyThreadSetup(hr uintptr) error {
	switch hr {
	case hrOK, hrFalse:
		return nil
	default:
		return fmt.Errorf("%w: entering single-threaded apartment failed with 0x%08X", ErrApartmentInvariant, uint32(hr))
	}
}

// folderState traces the folder picker's progress for logging.
type folderState int

const (
	stateUninitialized folderState = iota
	stateComInitialized
	stateDialogCreated
	stateCreationFailed
	stateShown
	stateCancelled
	stateResultsExtracted
	stateReleased
)

func (s folderState) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateComInitialized:
		return "com-initialized"
	case stateDialogCreated:
		return "dialog-created"
	case stateCreationFailed:
		return "creation-failed"
	case stateShown:
		return "shown"
	case stateCancelled:
		return "cancelled"
	case stateResultsExtracted:
		return "results-extracted"
	case stateReleased:
		return "released"
	default:
		return "unknown"
	}
}
