package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brickbreaker.toml")
	data := `
[log]
level = "Debug"
max_size = 5

[game]
tick_rate = 120
seed = 42
use_level_drop_chance = true

[storage]
path = "/tmp/bb"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Level != "Debug" || cfg.Log.MaxSize != 5 {
		t.Errorf("Expected Debug/5, got %s/%d", cfg.Log.Level, cfg.Log.MaxSize)
	}
	if cfg.Log.MaxBackups != 3 {
		t.Errorf("Expected default max_backups 3, got %d", cfg.Log.MaxBackups)
	}
	if cfg.Game.TickRate != 120 || cfg.Game.Seed != 42 || !cfg.Game.UseLevelDropChance {
		t.Errorf("Unexpected game config %+v", cfg.Game)
	}
	if cfg.Storage.Path != "/tmp/bb" {
		t.Errorf("Expected /tmp/bb, got %s", cfg.Storage.Path)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled by default")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("Expected error for explicit missing file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BRICK_GAME_START_LEVEL", "7")

	dir := t.TempDir()
	path := filepath.Join(dir, "c.toml")
	if err := os.WriteFile(path, []byte("[game]\nstart_level = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.StartLevel != 7 {
		t.Errorf("Expected env override 7, got %d", cfg.Game.StartLevel)
	}
}
