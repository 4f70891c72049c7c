// Package dialog shows the operating system's native file and folder
// pickers. Every call routes to exactly one platform: the Win32/COM bridge on
// Windows, AppleScript on macOS, zenity or kdialog on Linux. Any other
// system gets no result.
//
// "No result" (ok == false) covers cancellation, a missing helper and a
// failed native call alike. An error is returned only when the Windows folder
// picker finds its COM apartment in an impossible state.
package dialog

import (
	"context"
	"log"
	"runtime"
	"time"

	"github.com/google/uuid"

	"native-dialogs/src/native"
	"native-dialogs/src/probe"
	"native-dialogs/src/runner"
)

// Bridge is the Windows native dialog surface.
type Bridge interface {
	OpenFile() (string, bool)
	OpenFiles() ([]string, bool)
	SaveFile() (string, bool)
	OpenFolder() (string, bool, error)
	OpenFolders() ([]string, bool, error)
}

type nativeBridge struct{}

func (nativeBridge) OpenFile() (string, bool)             { return native.OpenFile() }
func (nativeBridge) OpenFiles() ([]string, bool)          { return native.OpenFiles() }
func (nativeBridge) SaveFile() (string, bool)             { return native.SaveFile() }
func (nativeBridge) OpenFolder() (string, bool, error)    { return native.OpenFolder() }
func (nativeBridge) OpenFolders() ([]string, bool, error) { return native.OpenFolders() }

type platform int

const (
	platformUnsupported platform = iota
	platformWindows
	platformDarwin
	platformLinux
)

func platformFor(goos string) platform {
	switch goos {
	case "windows":
		return platformWindows
	case "darwin":
		return platformDarwin
	case "linux":
		return platformLinux
	default:
		return platformUnsupported
	}
}

// Options configures a Dispatcher. Zero values select the real system.
type Options struct {
	GOOS        string        // defaults to runtime.GOOS
	Runner      runner.Runner // defaults to runner.ExecRunner
	Probe       *probe.Probe  // defaults to probe.Default()
	Native      Bridge        // defaults to the native package
	LinuxHelper string        // "auto", "zenity" or "kdialog"
}

// Dispatcher routes dialog requests to the platform implementation.
type Dispatcher struct {
	goos        string
	runner      runner.Runner
	probe       *probe.Probe
	native      Bridge
	linuxHelper string
}

// New builds a Dispatcher from opts.
func New(opts Options) *Dispatcher {
	d := &Dispatcher{
		goos:        opts.GOOS,
		runner:      opts.Runner,
		probe:       opts.Probe,
		native:      opts.Native,
		linuxHelper: opts.LinuxHelper,
	}
	if d.goos == "" {
		d.goos = runtime.GOOS
	}
	if d.runner == nil {
		d.runner = runner.ExecRunner{}
	}
	if d.probe == nil {
		d.probe = probe.Default()
	}
	if d.native == nil {
		d.native = nativeBridge{}
	}
	if d.linuxHelper == "" {
		d.linuxHelper = probe.HelperAuto
	}
	return d
}

var defaultDispatcher = New(Options{})

// Default returns the dispatcher used by the package-level functions.
func Default() *Dispatcher { return defaultDispatcher }

// Outcome is the result of one dialog invocation. Paths is nil when there
// is no result; it is never an empty non-nil slice.
type Outcome struct {
	ID       string
	Kind     Kind
	Paths    []string
	Err      error
	Duration time.Duration
}

// OK reports whether at least one path was selected.
func (o Outcome) OK() bool { return len(o.Paths) > 0 }

// Path returns the first selected path, or "".
func (o Outcome) Path() string {
	if len(o.Paths) == 0 {
		return ""
	}
	return o.Paths[0]
}

// Show runs the dialog for k and blocks until the user acts.
func (d *Dispatcher) Show(ctx context.Context, k Kind) Outcome {
	o := Outcome{ID: uuid.NewString(), Kind: k}
	start := time.Now()
	log.Printf("Dialog[%s]: %s on %s", o.ID, k, d.goos)

	paths, err := d.dispatch(ctx, k)
	if len(paths) == 0 {
		paths = nil
	}
	o.Paths, o.Err, o.Duration = paths, err, time.Since(start)

	switch {
	case err != nil:
		log.Printf("Dialog[%s]: %s failed after %v: %v", o.ID, k, o.Duration, err)
	case o.OK():
		log.Printf("Dialog[%s]: %s selected %d path(s) in %v", o.ID, k, len(o.Paths), o.Duration)
	default:
		log.Printf("Dialog[%s]: %s returned no result after %v", o.ID, k, o.Duration)
	}
	return o
}

// Start runs the dialog on its own goroutine. The channel delivers exactly
// one Outcome and is then closed.
func (d *Dispatcher) Start(ctx context.Context, k Kind) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		ch <- d.Show(ctx, k)
	}()
	return ch
}

// dispatch inspects the platform once and calls exactly one arm.
func (d *Dispatcher) dispatch(ctx context.Context, k Kind) ([]string, error) {
	switch platformFor(d.goos) {
	case platformWindows:
		return d.showWindows(k)
	case platformDarwin:
		return d.showDarwin(ctx, k), nil
	case platformLinux:
		return d.showLinux(ctx, k), nil
	default:
		log.Printf("Dialog: %s is not supported on %s", k, d.goos)
		return nil, nil
	}
}

func (d *Dispatcher) showWindows(k Kind) ([]string, error) {
	switch k {
	case KindOpenFile:
		return single(d.native.OpenFile())
	case KindOpenFiles:
		paths, _ := d.native.OpenFiles()
		return paths, nil
	case KindSaveFile:
		return single(d.native.SaveFile())
	case KindOpenFolder:
		path, ok, err := d.native.OpenFolder()
		if err != nil {
			return nil, err
		}
		return single(path, ok)
	case KindOpenFolders:
		paths, _, err := d.native.OpenFolders()
		return paths, err
	default:
		return nil, nil
	}
}

func single(path string, ok bool) ([]string, error) {
	if !ok || path == "" {
		return nil, nil
	}
	return []string{path}, nil
}

// OpenFile asks for one existing file.
func (d *Dispatcher) OpenFile(ctx context.Context) (string, bool, error) {
	o := d.Show(ctx, KindOpenFile)
	return o.Path(), o.OK(), o.Err
}

// OpenFiles asks for one or more existing files.
func (d *Dispatcher) OpenFiles(ctx context.Context) ([]string, bool, error) {
	o := d.Show(ctx, KindOpenFiles)
	return o.Paths, o.OK(), o.Err
}

// OpenFolder asks for one directory.
func (d *Dispatcher) OpenFolder(ctx context.Context) (string, bool, error) {
	o := d.Show(ctx, KindOpenFolder)
	return o.Path(), o.OK(), o.Err
}

// OpenFolders asks for one or more directories.
func (d *Dispatcher) OpenFolders(ctx context.Context) ([]string, bool, error) {
	o := d.Show(ctx, KindOpenFolders)
	return o.Paths, o.OK(), o.Err
}

// SaveFile asks for a path to save to.
func (d *Dispatcher) SaveFile(ctx context.Context) (string, bool, error) {
	o := d.Show(ctx, KindSaveFile)
	return o.Path(), o.OK(), o.Err
}

func OpenFile() (string, bool, error)    { return defaultDispatcher.OpenFile(context.Background()) }
func OpenFiles() ([]string, bool, error) { return defaultDispatcher.OpenFiles(context.Background()) }
func OpenFolder() (string, bool, error)  { return defaultDispatcher.OpenFolder(context.Background()) }
func OpenFolders() ([]string, bool, error) {
	return defaultDispatcher.OpenFolders(context.Background())
}
func SaveFile() (string, bool, error) { return defaultDispatcher.SaveFile(context.Background()) }
