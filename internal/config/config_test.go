package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"WIDTH", "HEIGHT", "SEED", "FILE"} {
		t.Setenv(envPrefix+k, "")
	}

	cfg := Load()
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Width != WindowWidth || cfg.Height != WindowHeight {
		t.Errorf("expected %dx%d, got %dx%d", WindowWidth, WindowHeight, cfg.Width, cfg.Height)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPrefix+"WIDTH", "800")
	t.Setenv(envPrefix+"HEIGHT", "600")
	t.Setenv(envPrefix+"SEED", "42")
	t.Setenv(envPrefix+"FILE", "/tmp/song.mp3")

	cfg := Load()
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.File != "/tmp/song.mp3" {
		t.Errorf("expected file override, got %q", cfg.File)
	}
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Setenv(envPrefix+"WIDTH", "wide")
	t.Setenv(envPrefix+"HEIGHT", "-3")
	t.Setenv(envPrefix+"SEED", "1.5")
	t.Setenv(envPrefix+"FILE", "")

	if cfg := Load(); cfg != Default() {
		t.Fatalf("expected bad values to fall back to defaults, got %+v", cfg)
	}
}
