package dialog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for names it does not recognise.
var ErrUnknownKind = errors.New("unknown dialog kind")

// Kind selects one of the five dialogs. It is the whole request: dialogs take
// no title, filter or starting directory.
type Kind int

const (
	KindOpenFile Kind = iota
	KindOpenFiles
	KindOpenFolder
	KindOpenFolders
	KindSaveFile
)

// Kinds lists every dialog kind in declaration order.
var Kinds = []Kind{KindOpenFile, KindOpenFiles, KindOpenFolder, KindOpenFolders, KindSaveFile}

func (k Kind) String() string {
	switch k {
	case KindOpenFile:
		return "open-file"
	case KindOpenFiles:
		return "open-files"
	case KindOpenFolder:
		return "open-folder"
	case KindOpenFolders:
		return "open-folders"
	case KindSaveFile:
		return "save-file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Multiple reports whether the dialog can return more than one path.
func (k Kind) Multiple() bool {
	return k == KindOpenFiles || k == KindOpenFolders
}

// Folder reports whether the dialog picks directories.
func (k Kind) Folder() bool {
	return k == KindOpenFolder || k == KindOpenFolders
}

// ParseKind maps a name such as "open-files" (or "openFiles") back to a Kind.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(s)))
	for _, k := range Kinds {
		if strings.ReplaceAll(k.String(), "-", "") == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
