package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"travel-time-estimator/internal/config"
)

func TestCommandFailsWithoutKeyFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.key")

	var out strings.Builder
	cmd := newCommand(config.Config{KeyFile: config.DefaultKeyFile, IncludeTraffic: true}, strings.NewReader("airport\n"), &out)

	err := cmd.Run(context.Background(), []string{"traveltime", "--key-file", missing})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want wrapped os.ErrNotExist", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestCommandFailsWithBlankKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.key")
	if err := os.WriteFile(path, []byte("\n  \n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	cmd := newCommand(config.Config{}, strings.NewReader(""), &strings.Builder{})

	err := cmd.Run(context.Background(), []string{"traveltime", "-k", path})
	if !errors.Is(err, config.ErrNoAPIKey) {
		t.Fatalf("err = %v, want ErrNoAPIKey", err)
	}
}

func TestCommandEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maps.key")
	if err := os.WriteFile(path, []byte("AIzaTestKey\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	var out strings.Builder
	cmd := newCommand(config.Config{}, strings.NewReader(""), &out)

	if err := cmd.Run(context.Background(), []string{"traveltime", "--key-file", path, "--traffic=false"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}
