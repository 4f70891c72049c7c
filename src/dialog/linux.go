package dialog

import (
	"context"
	"log"

	"native-dialogs/src/parse"
	"native-dialogs/src/probe"
)

// zenityArgs is the GTK helper's vocabulary. Multi-select output is
// separated by "|".
func zenityArgs(k Kind) []string {
	switch k {
	case KindOpenFile:
		return []string{"--file-selection"}
	case KindOpenFiles:
		return []string{"--file-selection", "--multiple", "--separator=" + parse.SepZenity}
	case KindOpenFolder:
		return []string{"--file-selection", "--directory"}
	case KindOpenFolders:
		return []string{"--file-selection", "--directory", "--multiple", "--separator=" + parse.SepZenity}
	case KindSaveFile:
		return []string{"--file-selection", "--save"}
	default:
		return nil
	}
}

// kdialogArgs is the Qt helper's vocabulary. kdialog cannot pick several
// directories, so KindOpenFolders uses the single directory picker.
func kdialogArgs(k Kind) []string {
	switch k {
	case KindOpenFile:
		return []string{"--getopenfilename"}
	case KindOpenFiles:
		return []string{"--getopenfilename", "--multiple", "--separate-output"}
	case KindOpenFolder, KindOpenFolders:
		return []string{"--getexistingdirectory"}
	case KindSaveFile:
		return []string{"--getsavefilename"}
	default:
		return nil
	}
}

func (d *Dispatcher) showLinux(ctx context.Context, k Kind) []string {
	helper, ok := d.probe.Preferred(d.linuxHelper)
	if !ok {
		log.Printf("Dialog: neither zenity nor kdialog found, %s unavailable", k)
		return nil
	}

	switch helper {
	case probe.Zenity:
		out, ok := d.runner.Run(ctx, probe.Zenity, zenityArgs(k)...)
		if !ok {
			return nil
		}
		if k.Multiple() {
			return parse.SplitPaths(out, parse.SepZenity)
		}
		return []string{out}
	default:
		out, ok := d.runner.Run(ctx, probe.KDialog, kdialogArgs(k)...)
		if !ok {
			return nil
		}
		if k == KindOpenFiles {
			return parse.SplitPaths(out, parse.SepKDialog)
		}
		// KindOpenFolders lands here too and becomes a one-element result
		return []string{out}
	}
}
