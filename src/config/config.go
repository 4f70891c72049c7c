package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

const (
	EnvFileEnvVar       = "NATIVE_DIALOGS_ENV"
	LinuxHelperEnvVar   = "LINUX_DIALOG_HELPER"
	FileLoggingEnvVar   = "ENABLE_FILE_LOGGING"
	CopyClipboardEnvVar = "COPY_TO_CLIPBOARD"

	LinuxHelperAuto    = "auto"
	LinuxHelperZenity  = "zenity"
	LinuxHelperKDialog = "kdialog"
)

type LoadOptions struct {
	EnvFileOverride string
}

type Config struct {
	EnableFileLogging bool   `mapstructure:"ENABLE_FILE_LOGGING"`
	LinuxHelper       string `mapstructure:"LINUX_DIALOG_HELPER"`
	CopyToClipboard   bool   `mapstructure:"COPY_TO_CLIPBOARD"`

	// EnvPath is the .env file that was read, if any.
	EnvPath string `mapstructure:"-"`
}

var keys = []string{FileLoggingEnvVar, LinuxHelperEnvVar, CopyClipboardEnvVar}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Sources, lowest priority first:
	// 1) .env file (--env-file, else next to the executable, else $NATIVE_DIALOGS_ENV)
	// 2) process environment (empty values count as unset)
	envPath := resolveEnvPath(opts)
	values, err := readDotenvValues(envPath)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			values[k] = v
		}
	}

	cfg := &Config{LinuxHelper: LinuxHelperAuto}
	if err := decode(values, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.EnvPath = envPath
	cfg.LinuxHelper = resolveLinuxHelper(cfg.LinuxHelper)
	return cfg, nil
}

func decode(values map[string]string, cfg *Config) error {
	input := make(map[string]interface{}, len(values))
	for k, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			input[k] = v
		}
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

func resolveEnvPath(opts LoadOptions) string {
	if override := strings.TrimSpace(opts.EnvFileOverride); override != "" {
		return override
	}

	if execPath, err := os.Executable(); err == nil {
		exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(exeEnv); err == nil {
			return exeEnv
		}
	}

	if alt := os.Getenv(EnvFileEnvVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func readDotenvValues(envPath string) (map[string]string, error) {
	if envPath == "" {
		return map[string]string{}, nil
	}

	values, err := godotenv.Read(envPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", envPath, err)
	}
	return values, nil
}

func resolveLinuxHelper(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case LinuxHelperZenity, "gtk":
		return LinuxHelperZenity
	case LinuxHelperKDialog, "qt", "kde":
		return LinuxHelperKDialog
	default:
		return LinuxHelperAuto
	}
}
