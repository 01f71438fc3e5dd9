package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labkit.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"

[transform]
confirm_overwrite = false

[iris]
figure_path = "out/iris.png"
hist_bins = 20

[server]
cors_origins = [" http://a.local ", ""]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Log.Level)
	}
	if !cfg.Log.Timestamp {
		t.Fatalf("expected timestamp default to survive")
	}
	if cfg.Transform.ConfirmOverwrite {
		t.Fatalf("expected confirm_overwrite disabled")
	}
	if cfg.Iris.FigurePath != "out/iris.png" {
		t.Fatalf("unexpected figure path: %q", cfg.Iris.FigurePath)
	}
	if cfg.Iris.HistBins != 20 {
		t.Fatalf("unexpected bins: %d", cfg.Iris.HistBins)
	}
	if cfg.Iris.HeadRows != 5 {
		t.Fatalf("unexpected head rows: %d", cfg.Iris.HeadRows)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}
	if len(cfg.Server.CorsOrigins) != 1 || cfg.Server.CorsOrigins[0] != "http://a.local" {
		t.Fatalf("unexpected cors origins: %+v", cfg.Server.CorsOrigins)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, `
[iris]
colour = "red"
`)
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadRejectsBadBins(t *testing.T) {
	path := writeConfig(t, `
[iris]
hist_bins = 0
`)
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("expected defaults when labkit.toml is absent: %v", err)
	}
	if cfg.Iris.FigurePath != "iris_visualizations.png" {
		t.Fatalf("unexpected default figure path: %q", cfg.Iris.FigurePath)
	}

	if _, err := LoadOrDefault(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatalf("expected error for explicit missing config")
	}
}

func TestTemplateRoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labkit.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Fatalf("expected refusal to overwrite existing config")
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	def := Default()
	if cfg.Iris != def.Iris || cfg.Log != def.Log || cfg.Transform != def.Transform {
		t.Fatalf("template drifted from defaults: %+v", cfg)
	}
}
