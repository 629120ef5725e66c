package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvPreset = "ORB_ARENA_PRESET"
	EnvSeed   = "ORB_ARENA_SEED"
)

// Load resolves tuning in order: preset, YAML file (optional), environment preset override
// An empty path skips the file; the result is validated
func Load(path, preset string) (*Tuning, error) {
	if env := os.Getenv(EnvPreset); env != "" {
		preset = env
	}

	t, err := Preset(preset)
	if err != nil {
		return nil, err
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open tuning file: %w", err)
		}
		defer f.Close()

		if err := Decode(f, &t); err != nil {
			return nil, fmt.Errorf("tuning file %s: %w", path, err)
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Decode overlays YAML fields onto t; fields absent from the document keep their value
// Unknown keys are rejected
func Decode(r io.Reader, t *Tuning) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode tuning: %w", err)
	}
	return nil
}

// Seed returns flagSeed when non-zero, else the ORB_ARENA_SEED value, else fallback
func Seed(flagSeed uint64, fallback uint64) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if env := os.Getenv(EnvSeed); env != "" {
		if v, err := strconv.ParseUint(env, 10, 64); err == nil && v != 0 {
			return v
		}
	}
	return fallback
}
