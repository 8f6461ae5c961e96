package config

import (
	"sort"
	"time"
)

// speedPresets maps the named playback speeds to inter-step delays.
var speedPresets = map[string]time.Duration{
	"crawl":   800 * time.Millisecond,
	"slow":    400 * time.Millisecond,
	"normal":  200 * time.Millisecond,
	"fast":    50 * time.Millisecond,
	"blazing": time.Millisecond,
}

// SpeedDelay resolves a named speed preset.
func SpeedDelay(name string) (time.Duration, bool) {
	d, ok := speedPresets[name]
	return d, ok
}

// ListSpeeds returns the preset names ordered slowest first.
func ListSpeeds() []string {
	names := make([]string, 0, len(speedPresets))
	for name := range speedPresets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return speedPresets[names[i]] > speedPresets[names[j]]
	})
	return names
}

// Presets are ready-made run setups keyed by algorithm then preset name.
var Presets = map[string]map[string]*Config{
	"bubble": {
		"classroom": {Algorithm: "bubble", Size: 12, Pattern: "random", Speed: "slow"},
		"nearly":    {Algorithm: "bubble", Size: 25, Pattern: "nearly-sorted", Speed: "normal"},
		"worst":     {Algorithm: "bubble", Size: 20, Pattern: "reversed", Speed: "fast"},
	},
	"selection": {
		"classroom": {Algorithm: "selection", Size: 12, Pattern: "random", Speed: "slow"},
		"uniform":   {Algorithm: "selection", Size: 30, Pattern: "few-unique", Speed: "normal"},
	},
	"insertion": {
		"classroom": {Algorithm: "insertion", Size: 12, Pattern: "random", Speed: "slow"},
		"best":      {Algorithm: "insertion", Size: 30, Pattern: "sorted", Speed: "fast"},
		"nearly":    {Algorithm: "insertion", Size: 30, Pattern: "nearly-sorted", Speed: "normal"},
	},
	"quick": {
		"classroom": {Algorithm: "quick", Size: 15, Pattern: "random", Speed: "slow"},
		"big":       {Algorithm: "quick", Size: 60, Pattern: "random", Speed: "blazing"},
		"worst":     {Algorithm: "quick", Size: 20, Pattern: "sorted", Speed: "fast"},
	},
}

func GetPreset(algorithm, preset string) *Config {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	cfg, ok := algoPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(algorithm string) []string {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algoPresets))
	for name := range algoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
