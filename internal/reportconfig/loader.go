package reportconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML profile. Fields absent from the file keep their
// default values; unknown fields are rejected.
func Load(fsys afero.Fs, path string) (*Profile, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML profile over the defaults
func Parse(data []byte) (*Profile, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // 알 수 없는 필드 발견 시 에러 반환
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Resolve returns the profile at path, or the defaults when path is empty
func Resolve(fsys afero.Fs, path string) (*Profile, error) {
	if path == "" {
		cfg := Default()
		return &cfg, nil
	}
	return Load(fsys, path)
}
