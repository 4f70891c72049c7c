//go:build windows

package native

import (
	"log"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"

	"native-dialogs/src/worker"
)

var (
	ole32              = windows.NewLazySystemDLL("ole32.dll")
	procCoInitializeEx = ole32.NewProc("CoInitializeEx")
)

// FILEOPENDIALOGOPTIONS and SIGDN values.
const (
	fosPickFolders      = 0x00000020
	fosForceFileSystem  = 0x00000040
	fosAllowMultiSelect = 0x00000200
	sigdnFileSysPath    = 0x80058000
)

type fileOpenDialogVtbl struct {
	ole.IUnknownVtbl
	// IModalWindow
	Show uintptr
	// IFileDialog
	SetFileTypes        uintptr
	SetFileTypeIndex    uintptr
	GetFileTypeIndex    uintptr
	Advise              uintptr
	Unadvise            uintptr
	SetOptions          uintptr
	GetOptions          uintptr
	SetDefaultFolder    uintptr
	SetFolder           uintptr
	GetFolder           uintptr
	GetCurrentSelection uintptr
	SetFileName         uintptr
	GetFileName         uintptr
	SetTitle            uintptr
	SetOkButtonLabel    uintptr
	SetFileNameLabel    uintptr
	GetResult           uintptr
	AddPlace            uintptr
	SetDefaultExtension uintptr
	Close               uintptr
	SetClientGuid       uintptr
	ClearClientData     uintptr
	SetFilter           uintptr
	// IFileOpenDialog
	GetResults       uintptr
	GetSelectedItems uintptr
}

type fileOpenDialog struct {
	vtbl *fileOpenDialogVtbl
}

type shellItemVtbl struct {
	ole.IUnknownVtbl
	BindToHandler  uintptr
	GetParent      uintptr
	GetDisplayName uintptr
	GetAttributes  uintptr
	Compare        uintptr
}

type shellItem struct {
	vtbl *shellItemVtbl
}

type shellItemArrayVtbl struct {
	ole.IUnknownVtbl
	BindToHandler              uintptr
	GetPropertyStore           uintptr
	GetPropertyDescriptionList uintptr
	GetAttributes              uintptr
	GetCount                   uintptr
	GetItemAt                  uintptr
	EnumItems                  uintptr
}

type shellItemArray struct {
	vtbl *shellItemArrayVtbl
}

// OpenFolder shows the shell folder picker for a single folder. A non-nil
// error is always an apartment invariant violation or a recovered panic.
func OpenFolder() (string, bool, error) {
	paths, err := worker.Run(enterApartment, func() ([]string, error) {
		return pickFolders(false)
	})
	if err != nil {
		return "", false, err
	}
	if len(paths) == 0 {
		return "", false, nil
	}
	return paths[0], true, nil
}

// OpenFolders shows the shell folder picker with multiple selection enabled.
func OpenFolders() ([]string, bool, error) {
	paths, err := worker.Run(enterApartment, func() ([]string, error) {
		return pickFolders(true)
	})
	if err != nil {
		return nil, false, err
	}
	return paths, len(paths) > 0, nil
}

func coInitializeSTA() uintptr {
	hr, _, _ := procCoInitializeEx.Call(0, uintptr(ole.COINIT_APARTMENTTHREADED))
	return hr
}

// enterApartment is the worker setup: it puts the locked thread into a
// single-threaded apartment and leaves it on teardown.
func enterApartment() (func(), error) {
	hr := coInitializeSTA()
	if err := classifyThreadSetup(hr); err != nil {
		return nil, err
	}
	return ole.CoUninitialize, nil
}

func trace(s folderState) {
	log.Printf("Native: folder picker -> %s", s)
}

// pickFolders runs on the STA worker thread. Every COM object it acquires is
// released before it returns, whichever path it takes.
func pickFolders(multiple bool) ([]string, error) {
	trace(stateUninitialized)
	if err := ClassifyApartmentInit(coInitializeSTA()); err != nil {
		return nil, err
	}
	defer ole.CoUninitialize()
	trace(stateComInitialized)

	unk, err := ole.CreateInstance(ole.NewGUID(CLSIDFileOpenDialog), ole.NewGUID(IIDFileOpenDialog))
	if err != nil {
		log.Printf("Native: CoCreateInstance(FileOpenDialog) failed: %v", err)
		trace(stateCreationFailed)
		return nil, nil
	}
	defer func() {
		unk.Release()
		trace(stateReleased)
	}()
	trace(stateDialogCreated)

	dlg := (*fileOpenDialog)(unsafe.Pointer(unk))

	var opts uint32
	if hr := dlg.call(dlg.vtbl.GetOptions, uintptr(unsafe.Pointer(&opts))); failed(hr) {
		log.Printf("Native: GetOptions failed: 0x%08X", uint32(hr))
		return nil, nil
	}
	opts |= fosPickFolders | fosForceFileSystem
	if multiple {
		opts |= fosAllowMultiSelect
	}
	if hr := dlg.call(dlg.vtbl.SetOptions, uintptr(opts)); failed(hr) {
		log.Printf("Native: SetOptions failed: 0x%08X", uint32(hr))
		return nil, nil
	}

	hr := dlg.call(dlg.vtbl.Show, uintptr(ownerWindow()))
	trace(stateShown)
	if failed(hr) {
		if hr != hrUserCancelled {
			log.Printf("Native: Show failed: 0x%08X", uint32(hr))
		}
		trace(stateCancelled)
		return nil, nil
	}

	var paths []string
	if multiple {
		paths = dlg.results()
	} else if p, ok := dlg.result(); ok {
		paths = []string{p}
	}
	trace(stateResultsExtracted)
	return paths, nil
}

func (d *fileOpenDialog) call(method uintptr, args ...uintptr) uintptr {
	hr, _, _ := syscall.SyscallN(method, append([]uintptr{uintptr(unsafe.Pointer(d))}, args...)...)
	return hr
}

func (d *fileOpenDialog) result() (string, bool) {
	var item *shellItem
	if hr := d.call(d.vtbl.GetResult, uintptr(unsafe.Pointer(&item))); failed(hr) || item == nil {
		log.Printf("Native: GetResult failed: 0x%08X", uint32(hr))
		return "", false
	}
	defer item.release()
	return item.fileSysPath()
}

func (d *fileOpenDialog) results() []string {
	var arr *shellItemArray
	if hr := d.call(d.vtbl.GetResults, uintptr(unsafe.Pointer(&arr))); failed(hr) || arr == nil {
		log.Printf("Native: GetResults failed: 0x%08X", uint32(hr))
		return nil
	}
	defer release(unsafe.Pointer(arr))

	var count uint32
	if hr, _, _ := syscall.SyscallN(arr.vtbl.GetCount, uintptr(unsafe.Pointer(arr)), uintptr(unsafe.Pointer(&count))); failed(hr) {
		log.Printf("Native: IShellItemArray.GetCount failed: 0x%08X", uint32(hr))
		return nil
	}

	var paths []string
	for i := uint32(0); i < count; i++ {
		if p, ok := arr.itemPath(i); ok {
			paths = append(paths, p)
		}
	}
	return paths
}

func (a *shellItemArray) itemPath(i uint32) (string, bool) {
	var item *shellItem
	hr, _, _ := syscall.SyscallN(a.vtbl.GetItemAt, uintptr(unsafe.Pointer(a)), uintptr(i), uintptr(unsafe.Pointer(&item)))
	if failed(hr) || item == nil {
		log.Printf("Native: IShellItemArray.GetItemAt(%d) failed: 0x%08X", i, uint32(hr))
		return "", false
	}
	defer item.release()
	return item.fileSysPath()
}

func (s *shellItem) fileSysPath() (string, bool) {
	var name *uint16
	hr, _, _ := syscall.SyscallN(s.vtbl.GetDisplayName, uintptr(unsafe.Pointer(s)), uintptr(sigdnFileSysPath), uintptr(unsafe.Pointer(&name)))
	if failed(hr) || name == nil {
		log.Printf("Native: IShellItem.GetDisplayName failed: 0x%08X", uint32(hr))
		return "", false
	}
	defer ole.CoTaskMemFree(uintptr(unsafe.Pointer(name)))

	path := windows.UTF16PtrToString(name)
	return path, path != ""
}

func (s *shellItem) release() { release(unsafe.Pointer(s)) }

// release drops a reference through the IUnknown slots every COM vtable starts with.
func release(p unsafe.Pointer) {
	(*ole.IUnknown)(p).Release()
}

func failed(hr uintptr) bool { return int32(hr) < 0 }
