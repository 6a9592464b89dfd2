package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.toml")
	configContent := `
[[pickers]]
title = "year:"
value = 1999
minimum = 1900
maximum = 2100
step_length = 1
jump_length = 10
modifier = "ctrl"
swallow_exhausted_input = true

[logging]
level = "debug"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if len(cfg.Pickers) != 1 {
		t.Fatalf("expected 1 picker, got %d", len(cfg.Pickers))
	}
	p := cfg.Pickers[0]
	if p.Title != "year:" || p.Value != 1999 {
		t.Errorf("unexpected picker: %+v", p)
	}
	if p.Minimum == nil || *p.Minimum != 1900 {
		t.Errorf("expected minimum 1900, got %v", p.Minimum)
	}
	if p.Maximum == nil || *p.Maximum != 2100 {
		t.Errorf("expected maximum 2100, got %v", p.Maximum)
	}
	if p.Modifier != "ctrl" || !p.Swallow {
		t.Errorf("expected ctrl modifier with swallowing, got %q / %v", p.Modifier, p.Swallow)
	}
	if p.Descending {
		t.Error("expected ascending picker")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadConfigWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if len(cfg.Pickers) != 3 {
		t.Fatalf("expected 3 default pickers, got %d", len(cfg.Pickers))
	}
	if !cfg.Pickers[1].Descending || cfg.Pickers[1].StepLength != 5 || cfg.Pickers[1].JumpLength != 33 {
		t.Errorf("unexpected descending picker defaults: %+v", cfg.Pickers[1])
	}
	if cfg.Pickers[2].Modifier != "ctrl" || !cfg.Pickers[2].Swallow {
		t.Errorf("unexpected third picker defaults: %+v", cfg.Pickers[2])
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadConfigRejectsBadToml(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[[pickers]\nvalue = "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(configPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := Save(configPath, DefaultConfig()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	third := reloaded.Pickers[2]
	if third.Minimum == nil || *third.Minimum != 1 || third.Maximum == nil || *third.Maximum != 9999 {
		t.Errorf("expected bounds [1, 9999] after save, got %v %v", third.Minimum, third.Maximum)
	}
	if reloaded.Pickers[0].Minimum != nil {
		t.Errorf("expected unbounded first picker, got minimum %v", *reloaded.Pickers[0].Minimum)
	}
	if third.Bars.TopCovered != "ᐃ" {
		t.Errorf("expected custom bar glyph, got %q", third.Bars.TopCovered)
	}
}

func TestWatchDeliversReloads(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configs, err := Watch(ctx, configPath, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	content := "[[pickers]]\ntitle = \"live\"\nvalue = 3\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// A truncating write can surface as more than one event; wait for the
	// complete file.
	timeout := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case cfg, ok := <-configs:
			if !ok {
				t.Fatal("watch channel closed early")
			}
			reloaded = len(cfg.Pickers) == 1 && cfg.Pickers[0].Title == "live"
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}

	cancel()
	for range configs {
	}
}
