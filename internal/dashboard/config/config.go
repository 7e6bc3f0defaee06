package config

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config is the dashboard configuration, immutable once loaded.
type Config struct {
	// Root folder whose immediate subdirectories are listed as projects.
	Folder string `json:"folder"`
	Port   int    `json:"port"`
	// Code editor executable; the key name is what existing config files use.
	Editor string `json:"vscode"`
}

// ConfigError reports a config file that cannot be used.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Addr is the loopback listen address for the configured port.
func (c *Config) Addr() string {
	return "127.0.0.1:" + strconv.Itoa(c.Port)
}

// URL is the address opened in the browser.
func (c *Config) URL() string {
	return fmt.Sprintf("http://localhost:%d/", c.Port)
}

// Load reads the config at path, prompting on stdin to create it when the
// file does not exist.
func Load(path string) (*Config, error) {
	return LoadOrCreate(path, os.Stdin, os.Stdout)
}

// LoadOrCreate is Load with explicit prompt streams.
func LoadOrCreate(path string, in io.Reader, out io.Writer) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Create(path, in, out)
		}
		return nil, &ConfigError{Path: path, Err: err}
	}
	return parse(path, raw)
}

func parse(path string, raw []byte) (*Config, error) {
	var in struct {
		Folder *string `json:"folder"`
		Port   *int    `json:"port"`
		Editor string  `json:"vscode"`
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if in.Folder == nil || strings.TrimSpace(*in.Folder) == "" {
		return nil, &ConfigError{Path: path, Err: errors.New(`missing required field "folder"`)}
	}
	if in.Port == nil {
		return nil, &ConfigError{Path: path, Err: errors.New(`missing required field "port"`)}
	}
	if !validPort(*in.Port) {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("port %d out of range", *in.Port)}
	}
	folder, err := ExpandPath(strings.TrimSpace(*in.Folder))
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return &Config{Folder: folder, Port: *in.Port, Editor: strings.TrimSpace(in.Editor)}, nil
}

// Create asks for folder, port and editor, writes them to path as indented
// JSON and returns the result. A port that is not a number in 1..65535 is
// asked for again.
func Create(path string, in io.Reader, out io.Writer) (*Config, error) {
	r := bufio.NewReader(in)
	fmt.Fprintln(out, "Could not find a valid configuration, please provide the following info:")

	var folder string
	for folder == "" {
		answer, err := prompt(r, out, "Path to folder: ")
		if err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
		folder = answer
	}
	var port int
	for {
		answer, err := prompt(r, out, "Local server port: ")
		if err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
		p, convErr := strconv.Atoi(answer)
		if convErr == nil && validPort(p) {
			port = p
			break
		}
		fmt.Fprintf(out, "Invalid port %q, expected a number between 1 and 65535\n", answer)
	}
	editor, err := prompt(r, out, "Path to code editor: ")
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	cfg := &Config{Folder: folder, Port: port, Editor: editor}
	if err := Save(path, cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return parse(path, mustJSON(cfg))
}

// Save writes cfg to path with 4-space indentation.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, mustJSON(cfg), 0o644)
}

func mustJSON(cfg *Config) []byte {
	b, _ := json.MarshalIndent(cfg, "", "    ")
	return b
}

func prompt(r *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("no answer for %q", strings.TrimSpace(label))
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func validPort(p int) bool { return p > 0 && p <= 65535 }

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
