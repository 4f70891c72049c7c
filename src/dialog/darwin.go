package dialog

import (
	"context"

	"native-dialogs/src/parse"
)

const osascript = "osascript"

// appleScript returns the script lines for k. Single selections print one
// POSIX path; multiple selections collect POSIX paths in a list and print it
// joined by ":" (a POSIX path never contains a colon). Cancelling raises
// error -128, which leaves stdout empty.
func appleScript(k Kind) []string {
	switch k {
	case KindOpenFile:
		return []string{"POSIX path of (choose file)"}
	case KindOpenFolder:
		return []string{"POSIX path of (choose folder)"}
	case KindSaveFile:
		return []string{"POSIX path of (choose file name)"}
	case KindOpenFiles:
		return multiSelectScript("choose file with multiple selections allowed")
	case KindOpenFolders:
		return multiSelectScript("choose folder with multiple selections allowed")
	default:
		return nil
	}
}

func multiSelectScript(choose string) []string {
	return []string{
		"set picked to " + choose,
		"set out to {}",
		"repeat with f in picked",
		"set end of out to POSIX path of f",
		"end repeat",
		"set AppleScript's text item delimiters to \"" + parse.SepAppleScript + "\"",
		"return out as text",
	}
}

// osascriptArgs passes every script line as its own -e argument.
func osascriptArgs(k Kind) []string {
	lines := appleScript(k)
	args := make([]string, 0, 2*len(lines))
	for _, l := range lines {
		args = append(args, "-e", l)
	}
	return args
}

func (d *Dispatcher) showDarwin(ctx context.Context, k Kind) []string {
	out, ok := d.runner.Run(ctx, osascript, osascriptArgs(k)...)
	if !ok {
		return nil
	}
	if k.Multiple() {
		return parse.SplitPaths(out, parse.SepAppleScript)
	}
	return []string{out}
}
