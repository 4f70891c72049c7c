package runtimeinit

import (
	"fmt"
	"log"

	"native-dialogs/src/clipboard"
	"native-dialogs/src/config"
	"native-dialogs/src/dialog"
	"native-dialogs/src/logutil"
)

type Options struct {
	LoadOptions  config.LoadOptions
	SetupLogging func(bool)
	// Verbose sends logs to stderr instead of following ENABLE_FILE_LOGGING.
	Verbose bool
	// CopyToClipboard is or-ed with COPY_TO_CLIPBOARD.
	CopyToClipboard bool
}

// Runtime is what a front end needs after bootstrap.
type Runtime struct {
	Config     *config.Config
	Dispatcher *dialog.Dispatcher
	Copy       bool
}

func Bootstrap(opts Options) (*Runtime, error) {
	cfg, err := config.LoadWithOptions(opts.LoadOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	switch {
	case opts.Verbose:
		logutil.ToStderr()
	case opts.SetupLogging != nil:
		opts.SetupLogging(cfg.EnableFileLogging)
	default:
		logutil.Setup(cfg.EnableFileLogging)
	}
	if cfg.EnvPath != "" {
		log.Printf("Config loaded from %s", cfg.EnvPath)
	}
	log.Printf("Linux dialog helper preference: %s", cfg.LinuxHelper)

	copyPaths := opts.CopyToClipboard || cfg.CopyToClipboard
	if copyPaths {
		if err := clipboard.Init(); err != nil {
			log.Printf("Clipboard unavailable, not copying: %v", err)
			copyPaths = false
		}
	}

	return &Runtime{
		Config:     cfg,
		Dispatcher: dialog.New(dialog.Options{LinuxHelper: cfg.LinuxHelper}),
		Copy:       copyPaths,
	}, nil
}
