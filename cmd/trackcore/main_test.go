package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFlagDefaults(t *testing.T) {
	if *entities != -1 {
		t.Errorf("expected entities default -1, got %d", *entities)
	}
	if *targetFPS != 0 {
		t.Errorf("expected fps default 0, got %v", *targetFPS)
	}
	if *configPath != "" {
		t.Errorf("expected empty config path, got %q", *configPath)
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	cfg, err := loadConfig("", overrides{entities: -1})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got := cfg.GetSource(); got != "synthetic://" {
		t.Errorf("GetSource() = %q, want synthetic://", got)
	}
	if cfg.EntityCount != nil {
		t.Errorf("EntityCount should stay unset, got %d", *cfg.EntityCount)
	}
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackcore.yaml")
	body := "listen: 127.0.0.1:7000\ntarget_fps: 10\nentity_count: 4\nsource: synthetic://?frames=5\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path, overrides{fps: 60, entities: 0, httpListen: ":9999"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got := cfg.GetListen(); got != "127.0.0.1:7000" {
		t.Errorf("GetListen() = %q, file value expected", got)
	}
	if got := cfg.GetHTTPListen(); got != ":9999" {
		t.Errorf("GetHTTPListen() = %q, flag value expected", got)
	}
	if got := cfg.GetTargetFPS(); got != 60 {
		t.Errorf("GetTargetFPS() = %v, want 60", got)
	}
	if got := cfg.GetEntityCount(); got != 0 {
		t.Errorf("GetEntityCount() = %d, want 0", got)
	}
	if got := cfg.GetSource(); got != "synthetic://?frames=5" {
		t.Errorf("GetSource() = %q", got)
	}
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("target_fps: -3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path, overrides{entities: -1}); err == nil {
		t.Error("expected error for negative fps")
	}
}
