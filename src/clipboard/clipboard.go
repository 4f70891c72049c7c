package clipboard

import (
	"errors"
	"strings"
	"sync"

	"golang.design/x/clipboard"
)

var (
	writeMu    sync.Mutex
	initOnce   sync.Once
	initErr    error
	errNoPaths = errors.New("no paths to copy")
	lineBreak  = "\n"
)

// Init prepares the system clipboard. Safe to call more than once.
func Init() error {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	return initErr
}

// FormatPaths joins paths one per line, the same layout the CLI prints.
func FormatPaths(paths []string) string {
	return strings.Join(paths, lineBreak)
}

// WritePaths performs a mutex-guarded clipboard write of the selected paths.
func WritePaths(paths []string) error {
	if len(paths) == 0 {
		return errNoPaths
	}
	if err := Init(); err != nil {
		return err
	}
	writeMu.Lock()
	defer writeMu.Unlock()
	clipboard.Write(clipboard.FmtText, []byte(FormatPaths(paths)))
	return nil
}
