package config_test

import (
	"os"
	"testing"

	"paradereg/internal/config"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for _, k := range []string{"LOCALE", "LOG_LEVEL", "LOG_FORMAT", "TIMEZONE", "SEED"} {
		t.Setenv(k, kv[k])
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	setEnv(t, nil)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "es" || cfg.LogLevel != "info" || cfg.LogFormat != "console" || cfg.Timezone != "America/Lima" || !cfg.Seed {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	setEnv(t, map[string]string{
		"LOCALE":     "en",
		"LOG_LEVEL":  "DEBUG",
		"LOG_FORMAT": "json",
		"TIMEZONE":   "UTC",
		"SEED":       "false",
	})

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "en" || cfg.LogFormat != "json" || cfg.Timezone != "UTC" || cfg.Seed {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"seed":      {"SEED": "maybe"},
		"log level": {"LOG_LEVEL": "loud"},
		"format":    {"LOG_FORMAT": "xml"},
		"timezone":  {"TIMEZONE": "Mars/Olympus_Mons"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			chdir(t, t.TempDir())
			setEnv(t, env)
			if _, err := config.Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
