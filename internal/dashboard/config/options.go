package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvConfigPath overrides the default config location.
	EnvConfigPath = "DEVDASH_CONFIG"

	FileName = "config.json"
)

// Options are the process-level settings resolved before the config loads.
type Options struct {
	ConfigPath string
	// Directory holding the executable, the static UI and the metadata files.
	InstallDir string
}

// ResolveOptions loads an optional .env from installDir, then parses args.
// The only flag is -config (alias -c).
func ResolveOptions(args []string, installDir string, stderr io.Writer) (Options, error) {
	_ = godotenv.Load(filepath.Join(installDir, ".env"))

	def := firstNonEmpty(strings.TrimSpace(os.Getenv(EnvConfigPath)), filepath.Join(installDir, FileName))

	fs := flag.NewFlagSet("devdash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var path string
	fs.StringVar(&path, "config", def, "path to the config file")
	fs.StringVar(&path, "c", def, "shorthand for -config")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	return Options{ConfigPath: path, InstallDir: installDir}, nil
}

// InstallDir returns the directory of the running executable, falling back
// to the working directory.
func InstallDir() string {
	exe, err := os.Executable()
	if err != nil {
		wd, _ := os.Getwd()
		return wd
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
