package voidtype

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadPreset reads YAML parameters from r. Fields missing from the file
// keep their DefaultParams values; unknown fields are an error. The
// result is normalised.
//
//	mode: stripes
//	strokes: 4
//	gap_ratio: 0.25
//	random:
//	  scope: full
func LoadPreset(r io.Reader) (Params, error) {
	p := DefaultParams()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Params{}, fmt.Errorf("%w: preset: %v", ErrInvalidParams, err)
	}
	if err := p.Normalize(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// LoadPresetFile reads a preset from disk.
func LoadPresetFile(filename string) (Params, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Params{}, fmt.Errorf("failed to read preset: %w", err)
	}
	return LoadPreset(bytes.NewReader(data))
}

// SavePreset writes p as YAML.
func SavePreset(w io.Writer, p Params) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	return enc.Close()
}

// SavePresetFile writes p to filename.
func SavePresetFile(filename string, p Params) error {
	var buf bytes.Buffer
	if err := SavePreset(&buf, p); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0o644)
}
