package probe

import (
	"errors"
	"sync"
	"testing"
)

type fakePath struct {
	mu      sync.Mutex
	present map[string]bool
	calls   map[string]int
}

func newFakePath(present ...string) *fakePath {
	f := &fakePath{present: map[string]bool{}, calls: map[string]int{}}
	for _, p := range present {
		f.present[p] = true
	}
	return f
}

func (f *fakePath) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	if f.present[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func TestHelpersCached(t *testing.T) {
	fake := newFakePath(Zenity)
	p := New(fake.LookPath)

	first := p.Helpers()
	for i := 0; i < 5; i++ {
		if got := p.Helpers(); got != first {
			t.Fatalf("Expected %+v on call %d, got %+v", first, i, got)
		}
	}

	if !first.Zenity || first.KDialog {
		t.Errorf("Expected zenity only, got %+v", first)
	}
	if fake.calls[Zenity] != 1 || fake.calls[KDialog] != 1 {
		t.Errorf("Expected one lookup per helper, got %v", fake.calls)
	}
}

func TestHelpersConcurrentFirstUse(t *testing.T) {
	fake := newFakePath(KDialog)
	p := New(fake.LookPath)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if h := p.Helpers(); !h.KDialog || h.Zenity {
				t.Errorf("Expected kdialog only, got %+v", h)
			}
		}()
	}
	wg.Wait()

	if fake.calls[KDialog] != 1 {
		t.Errorf("Expected a single kdialog lookup, got %d", fake.calls[KDialog])
	}
}

func TestPreferred(t *testing.T) {
	tests := []struct {
		name     string
		present  []string
		override string
		want     string
		wantOK   bool
	}{
		{"both present prefers zenity", []string{Zenity, KDialog}, "", Zenity, true},
		{"kdialog only", []string{KDialog}, "", KDialog, true},
		{"zenity only", []string{Zenity}, "auto", Zenity, true},
		{"neither", nil, "", "", false},
		{"override kdialog", []string{Zenity, KDialog}, "kdialog", KDialog, true},
		{"override missing helper falls back", []string{KDialog}, "zenity", KDialog, true},
		{"override is case insensitive", []string{Zenity, KDialog}, " KDialog ", KDialog, true},
		{"override with neither", nil, "kdialog", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(newFakePath(tt.present...).LookPath)
			got, ok := p.Preferred(tt.override)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Preferred(%q) = (%q, %v), want (%q, %v)", tt.override, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Expected Default to return the same probe")
	}
}
