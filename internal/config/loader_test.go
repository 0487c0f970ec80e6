package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chase.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := decodeChase(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to decode: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultChaseConfig()) {
		t.Errorf("embedded defaults differ from builtin:\n%+v\n%+v", cfg, DefaultChaseConfig())
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := writeConfig(t, `
pursuer:
  chase_speed: 7
emission:
  trailing_shot: false
`)

	cfg, src, err := LoadChase(path, nil)
	if err != nil {
		t.Fatalf("LoadChase() error = %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %v, expected custom", src)
	}
	if cfg.Pursuer.ChaseSpeed != 7 {
		t.Errorf("ChaseSpeed = %v, expected 7", cfg.Pursuer.ChaseSpeed)
	}
	if cfg.Emission.TrailingShot {
		t.Error("TrailingShot should be overridden to false")
	}
	// Untouched keys keep defaults
	if cfg.Player.BaseSpeed != 10 || cfg.Projectile.LifetimeMS != 1000 {
		t.Errorf("defaults not preserved: base_speed=%v lifetime_ms=%v", cfg.Player.BaseSpeed, cfg.Projectile.LifetimeMS)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown key", "pursuer:\n  turbo: true\n", "turbo"},
		{"bad type", "player:\n  base_speed: fast\n", "fast"},
		{"homing after lifetime", "projectile:\n  homing_delay_ms: 2000\n", "homing_delay_ms"},
		{"zero emission", "emission:\n  rate_ms: 0\n", "rate_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := LoadChase(writeConfig(t, tc.content), nil)
			if err == nil {
				t.Fatal("LoadChase() expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMissingCustomFile(t *testing.T) {
	_, _, err := LoadChase(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if err == nil {
		t.Fatal("LoadChase() with missing file should fail")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected float64
	}{
		{DifficultyEasy, 3},
		{DifficultyNormal, 5},
		{DifficultyHard, 8},
		{DifficultyFixed, 6}, // keeps configured value
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultChaseConfig()
			cfg.Pursuer.ChaseSpeed = 6
			ApplyChasePreset(&cfg, tc.preset)
			if cfg.Pursuer.ChaseSpeed != tc.expected {
				t.Errorf("ChaseSpeed = %v, expected %v", cfg.Pursuer.ChaseSpeed, tc.expected)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyFixed {
		t.Errorf("ParsePreset(\"\") = %v, %v; expected fixed", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(\"hard\") = %v, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(\"nightmare\") should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultChaseConfig()
	cfg.Input.ExactRelease = true

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "exact_release: true") {
		t.Errorf("marshalled YAML missing exact_release:\n%s", data)
	}

	back, err := decodeChase(data)
	if err != nil {
		t.Fatalf("decode of marshalled config failed: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Errorf("round trip mismatch:\n%+v\n%+v", back, cfg)
	}
}
