package probe

import (
	"log"
	"os/exec"
	"strings"
	"sync"
)

// Helper executables looked up on PATH.
const (
	Zenity  = "zenity"  // GTK
	KDialog = "kdialog" // Qt
)

// Override values accepted by Preferred.
const (
	HelperAuto = "auto"
)

// Helpers reports which picker helpers exist on this system.
type Helpers struct {
	Zenity  bool
	KDialog bool
}

// Any reports whether at least one helper exists.
func (h Helpers) Any() bool { return h.Zenity || h.KDialog }

// Probe computes Helpers once and reuses the answer for the life of the process.
type Probe struct {
	// LookPath defaults to exec.LookPath.
	LookPath func(file string) (string, error)

	once    sync.Once
	helpers Helpers
}

var defaultProbe = &Probe{}

// Default returns the process-wide probe.
func Default() *Probe { return defaultProbe }

// New returns a probe using lookPath, or exec.LookPath when nil.
func New(lookPath func(string) (string, error)) *Probe {
	return &Probe{LookPath: lookPath}
}

// Helpers returns the cached capability flags, computing them on first use.
func (p *Probe) Helpers() Helpers {
	p.once.Do(func() {
		lookPath := p.LookPath
		if lookPath == nil {
			lookPath = exec.LookPath
		}
		p.helpers = Helpers{
			Zenity:  present(lookPath, Zenity),
			KDialog: present(lookPath, KDialog),
		}
		log.Printf("Probe: zenity=%v kdialog=%v", p.helpers.Zenity, p.helpers.KDialog)
	})
	return p.helpers
}

// Preferred picks the helper to invoke. zenity wins over kdialog unless
// override names kdialog and kdialog is present. An override naming a
// missing helper behaves like "auto".
func (p *Probe) Preferred(override string) (string, bool) {
	h := p.Helpers()
	switch strings.ToLower(strings.TrimSpace(override)) {
	case Zenity:
		if h.Zenity {
			return Zenity, true
		}
	case KDialog:
		if h.KDialog {
			return KDialog, true
		}
	}
	switch {
	case h.Zenity:
		return Zenity, true
	case h.KDialog:
		return KDialog, true
	default:
		return "", false
	}
}

func present(lookPath func(string) (string, error), name string) bool {
	path, err := lookPath(name)
	if err != nil {
		return false
	}
	log.Printf("Probe: found %s at %s", name, path)
	return true
}
