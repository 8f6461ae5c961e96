package config

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Algorithm != "bubble" || cfg.Size != 30 || cfg.Pattern != "random" || cfg.Speed != "normal" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.MinValue != 5 || cfg.MaxValue != 100 {
		t.Errorf("unexpected value range defaults: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortlab.yaml")

	want := &Config{
		Algorithm: "quick",
		Size:      64,
		Pattern:   "reversed",
		Seed:      42,
		Speed:     "fast",
		DelayMs:   15,
		MinValue:  1,
		MaxValue:  500,
	}
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNormalizedFillsZeroFields(t *testing.T) {
	sparse := &Config{Algorithm: "quick", Size: 15}
	got := sparse.Normalized()

	if got.Algorithm != "quick" || got.Size != 15 {
		t.Errorf("explicit fields changed: %+v", got)
	}
	if got.Pattern != DefaultPattern || got.Speed != DefaultSpeed {
		t.Errorf("zero fields not filled: %+v", got)
	}
	if got.MinValue != DefaultMinValue || got.MaxValue != DefaultMaxValue {
		t.Errorf("value range not filled: %+v", got)
	}
	if sparse.Pattern != "" {
		t.Error("Normalized mutated the receiver")
	}
}

func TestDelayResolution(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want time.Duration
	}{
		{"explicit delay wins over speed", Config{DelayMs: 75, Speed: "crawl"}, 75 * time.Millisecond},
		{"named speed", Config{Speed: "fast"}, 50 * time.Millisecond},
		{"unknown speed falls back to normal", Config{Speed: "warp"}, 200 * time.Millisecond},
		{"empty config falls back to normal", Config{}, 200 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Delay(); got != tt.want {
				t.Errorf("Delay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListSpeedsOrderedSlowestFirst(t *testing.T) {
	names := ListSpeeds()
	want := []string{"crawl", "slow", "normal", "fast", "blazing"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListSpeeds() = %v, want %v", names, want)
	}
}

func TestSpeedDelay(t *testing.T) {
	if d, ok := SpeedDelay("blazing"); !ok || d != time.Millisecond {
		t.Errorf("SpeedDelay(blazing) = %v, %v", d, ok)
	}
	if _, ok := SpeedDelay("warp"); ok {
		t.Error("SpeedDelay accepted an unknown name")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bubble", "classroom")
	if cfg == nil {
		t.Fatal("bubble/classroom preset missing")
	}
	if cfg.Algorithm != "bubble" || cfg.Size != 12 {
		t.Errorf("unexpected preset: %+v", cfg)
	}
	if GetPreset("bubble", "nope") != nil {
		t.Error("unknown preset name should return nil")
	}
	if GetPreset("bogo", "classroom") != nil {
		t.Error("unknown algorithm should return nil")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("quick")
	want := []string{"big", "classroom", "worst"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListPresets(quick) = %v, want %v", names, want)
	}
	if ListPresets("bogo") != nil {
		t.Error("unknown algorithm should return nil")
	}
}

func TestPresetsNormalizeCleanly(t *testing.T) {
	for algo, presets := range Presets {
		for name, cfg := range presets {
			n := cfg.Normalized()
			if n.Algorithm != algo {
				t.Errorf("%s/%s: algorithm = %q", algo, name, n.Algorithm)
			}
			if n.Size <= 0 || n.MinValue <= 0 || n.MaxValue <= n.MinValue {
				t.Errorf("%s/%s: bad dimensions after normalize: %+v", algo, name, n)
			}
			if _, ok := SpeedDelay(n.Speed); !ok {
				t.Errorf("%s/%s: unknown speed %q", algo, name, n.Speed)
			}
		}
	}
}
