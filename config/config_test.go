package config

import "testing"

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if cfg.Seed != 0 || cfg.LogLevel != "warn" || cfg.NoColor {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromValues(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"YACHT_SEED":      "1234",
		"YACHT_LOG_LEVEL": " DEBUG ",
		"NO_COLOR":        "true",
	})
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Seed = %d, want 1234", cfg.Seed)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.NoColor {
		t.Error("NoColor = false, want true")
	}
}

func TestLoadFromRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"seed not a number", map[string]string{"YACHT_SEED": "abc"}},
		{"unknown log level", map[string]string{"YACHT_LOG_LEVEL": "loud"}},
		{"bad bool", map[string]string{"NO_COLOR": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(tt.environ); err == nil {
				t.Fatalf("expected error for %v", tt.environ)
			}
		})
	}
}
