// Package manifest derives the npm package.json for a generated target
// from the configuration record. The builder is deterministic and pure;
// writing the result to disk is the orchestrator's job.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for manifest construction.
var (
	// ErrDependencyConflict indicates the same package was added twice
	// with different versions. Each branch of the builder owns its
	// packages outright, so a conflict is a defect in the rules.
	ErrDependencyConflict = errors.New("manifest: conflicting versions for dependency")

	// ErrEmptyScript indicates a script was registered with an empty command.
	ErrEmptyScript = errors.New("manifest: empty script command")
)

// Manifest is the generated package.json shape. Field order matches npm
// convention; map keys serialize alphabetically.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Main            string            `json:"main,omitempty"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// depSet accumulates dependencies with union semantics: re-adding a
// package at the same version is a no-op, a different version is an error.
type depSet struct {
	versions map[string]string
	err      error
}

func newDepSet() *depSet {
	return &depSet{versions: make(map[string]string)}
}

// add records a package version. The first error sticks and later adds
// become no-ops, so call sites can chain without checking each one.
func (s *depSet) add(name, version string) *depSet {
	if s.err != nil {
		return s
	}
	if have, ok := s.versions[name]; ok {
		if have != version {
			s.err = fmt.Errorf("%w: %s (%s vs %s)", ErrDependencyConflict, name, have, version)
		}
		return s
	}
	s.versions[name] = version
	return s
}

// JSON serializes the manifest as indented package.json content.
func (m *Manifest) JSON() (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}
	return string(data) + "\n", nil
}
