package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{"folder": "/home/me/projects", "port": 8765, "vscode": "/usr/bin/code"}`)

	cfg, err := LoadOrCreate(path, strings.NewReader(""), io.Discard)
	require.NoError(t, err)
	require.Equal(t, "/home/me/projects", cfg.Folder)
	require.Equal(t, 8765, cfg.Port)
	require.Equal(t, "/usr/bin/code", cfg.Editor)
	require.Equal(t, "127.0.0.1:8765", cfg.Addr())
	require.Equal(t, "http://localhost:8765/", cfg.URL())
}

func TestLoadMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{"folder": "/x", "port": `)

	_, err := LoadOrCreate(path, strings.NewReader(""), io.Discard)
	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr), "err=%v", err)
	require.Equal(t, path, cerr.Path)
}

func TestLoadMissingFields(t *testing.T) {
	cases := map[string]string{
		"folder": `{"port": 8000, "vscode": "code"}`,
		"port":   `{"folder": "/x", "vscode": "code"}`,
		"range":  `{"folder": "/x", "port": 70000}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			writeFile(t, path, body)
			_, err := LoadOrCreate(path, strings.NewReader(""), io.Discard)
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
		})
	}
}

func TestCreatePromptsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	in := strings.NewReader("/srv/projects\nnot-a-port\n0\n9001\n/opt/code/bin/code\n")
	var out bytes.Buffer

	cfg, err := LoadOrCreate(path, in, &out)
	require.NoError(t, err)
	require.Equal(t, &Config{Folder: "/srv/projects", Port: 9001, Editor: "/opt/code/bin/code"}, cfg)

	prompts := out.String()
	require.Contains(t, prompts, "Path to folder: ")
	require.Equal(t, 3, strings.Count(prompts, "Local server port: "))
	require.Contains(t, prompts, "Path to code editor: ")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "\n    \"port\": 9001")
	var onDisk map[string]any
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Equal(t, "/opt/code/bin/code", onDisk["vscode"])

	again, err := LoadOrCreate(path, strings.NewReader(""), io.Discard)
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestCreateLastAnswerWithoutNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := Create(path, strings.NewReader("/p\n8080\ncode"), io.Discard)
	require.NoError(t, err)
	require.Equal(t, "code", cfg.Editor)
}

func TestCreateAbortsOnClosedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	_, err := Create(path, strings.NewReader("/p\n"), io.Discard)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	_, statErr := os.Stat(path)
	require.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home: %v", err)
	}
	got, err := ExpandPath("~/code")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "code"), got)

	got, err = ExpandPath("/abs/~x")
	require.NoError(t, err)
	require.Equal(t, "/abs/~x", got)
}
