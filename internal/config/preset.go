package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPreset reads a Record from a YAML preset file. The preset goes
// through the same Normalize/Validate pipeline as wizard- or flag-built
// records, so a malformed preset fails before any generation starts.
//
// Example preset:
//
//	name: my-app
//	type: fullstack
//	frontend: react-ts
//	tailwind: true
//	backend: express-ts
//	database: postgresql
//	features: [env, eslint]
//	install: true
func LoadPreset(path string) (*Record, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, path)
		}
		return nil, fmt.Errorf("read preset %q: %w", path, err)
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
	}

	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("preset %q: %w", path, err)
	}
	return &rec, nil
}
