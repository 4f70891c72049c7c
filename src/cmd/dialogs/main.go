package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"native-dialogs/src/clipboard"
	"native-dialogs/src/config"
	"native-dialogs/src/dialog"
	"native-dialogs/src/notification"
	"native-dialogs/src/runtimeinit"
)

const (
	exitSelected = 0
	exitNoResult = 1
	exitFatal    = 2
)

// errNoResult marks a cancelled dialog or an unsupported platform.
var errNoResult = errors.New("no selection")

type cliOptions struct {
	jsonOutput bool
	copy       bool
	verbose    bool
	envFile    string
}

type deps struct {
	stdout    io.Writer
	stderr    io.Writer
	bootstrap func(runtimeinit.Options) (*runtimeinit.Runtime, error)
	fatal     func(error)
}

func defaultDeps() deps {
	return deps{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		bootstrap: runtimeinit.Bootstrap,
		fatal:     notification.ShowFatal,
	}
}

func main() {
	os.Exit(runWithArgs(normalizeLegacyArgs(os.Args), defaultDeps()))
}

func runWithArgs(args []string, d deps) int {
	if len(args) == 0 {
		args = []string{"dialogs"}
	}

	opts := &cliOptions{}
	cmd := newRootCmd(opts, d)
	cmd.SetArgs(args[1:])
	cmd.SetOut(d.stdout)
	cmd.SetErr(d.stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitSelected
	case errors.Is(err, errNoResult):
		return exitNoResult
	default:
		fmt.Fprintf(d.stderr, "Error: %v\n", err)
		return exitFatal
	}
}

func newRootCmd(opts *cliOptions, d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dialogs",
		Short:         "Show a native file or folder picker and print the selection",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output the result as JSON")
	cmd.PersistentFlags().BoolVar(&opts.copy, "copy", false, "Copy the selected path(s) to the clipboard")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output to stderr")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Path to .env file (highest precedence)")

	for _, k := range dialog.Kinds {
		cmd.AddCommand(newKindCmd(k, opts, d))
	}
	return cmd
}

func newKindCmd(k dialog.Kind, opts *cliOptions, d deps) *cobra.Command {
	short := map[dialog.Kind]string{
		dialog.KindOpenFile:    "Pick one existing file",
		dialog.KindOpenFiles:   "Pick one or more existing files",
		dialog.KindOpenFolder:  "Pick one folder",
		dialog.KindOpenFolders: "Pick one or more folders",
		dialog.KindSaveFile:    "Pick a path to save to",
	}[k]

	return &cobra.Command{
		Use:   k.String(),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDialog(cmd.Context(), k, *opts, d)
		},
	}
}

func runDialog(ctx context.Context, k dialog.Kind, opts cliOptions, d deps) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := d.bootstrap(runtimeinit.Options{
		LoadOptions:     config.LoadOptions{EnvFileOverride: opts.envFile},
		Verbose:         opts.verbose,
		CopyToClipboard: opts.copy,
	})
	if err != nil {
		return err
	}

	// Dialogs never time out: the call blocks until the user acts.
	o := <-rt.Dispatcher.Start(ctx, k)
	if o.Err != nil {
		log.Printf("Dialog %s hit an unrecoverable error: %v", k, o.Err)
		if d.fatal != nil {
			d.fatal(o.Err)
		}
		return fmt.Errorf("%s: %w", k, o.Err)
	}

	if err := writeResult(d.stdout, o, opts.jsonOutput); err != nil {
		return err
	}

	if !o.OK() {
		return errNoResult
	}

	if rt.Copy {
		if err := clipboard.WritePaths(o.Paths); err != nil {
			log.Printf("Failed to write to clipboard: %v", err)
			fmt.Fprintf(d.stderr, "Warning: failed to copy to clipboard: %v\n", err)
		}
	}
	return nil
}

type DialogResult struct {
	ID        string   `json:"id"`
	Kind      string   `json:"kind"`
	Paths     []string `json:"paths"`
	Cancelled bool     `json:"cancelled"`
	Duration  float64  `json:"duration_seconds"`
}

func writeResult(w io.Writer, o dialog.Outcome, jsonOutput bool) error {
	if jsonOutput {
		result := DialogResult{
			ID:        o.ID,
			Kind:      o.Kind.String(),
			Paths:     o.Paths,
			Cancelled: !o.OK(),
			Duration:  o.Duration.Seconds(),
		}

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		return nil
	}

	for _, p := range o.Paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	normalized := make([]string, len(args))
	copy(normalized, args)

	for i := 1; i < len(normalized); i++ {
		arg := normalized[i]
		for _, name := range []string{"json", "copy", "verbose", "env-file"} {
			switch {
			case arg == "-"+name:
				normalized[i] = "--" + name
			case strings.HasPrefix(arg, "-"+name+"="):
				normalized[i] = "--" + arg[1:]
			}
		}
	}

	return normalized
}
