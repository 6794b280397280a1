package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stackgen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestLoadPreset(t *testing.T) {
	t.Run("full_preset", func(t *testing.T) {
		path := writePreset(t, `
name: my-app
type: fullstack
frontend: react-ts
tailwind: true
backend: express-ts
database: postgresql
features: [env, eslint]
install: true
`)
		rec, err := LoadPreset(path)
		if err != nil {
			t.Fatalf("LoadPreset error: %v", err)
		}
		if rec.ProjectName != "my-app" {
			t.Errorf("ProjectName = %q, want my-app", rec.ProjectName)
		}
		if rec.Frontend != FrontendReactTS || rec.Backend != BackendExpressTS {
			t.Errorf("frameworks = %q/%q", rec.Frontend, rec.Backend)
		}
		if !rec.Tailwind || !rec.Install {
			t.Error("booleans not parsed")
		}
		if len(rec.Features) != 2 {
			t.Errorf("Features = %v", rec.Features)
		}
	})

	t.Run("backend_defaults_database", func(t *testing.T) {
		path := writePreset(t, "name: api\ntype: backend\nbackend: express-js\n")
		rec, err := LoadPreset(path)
		if err != nil {
			t.Fatalf("LoadPreset error: %v", err)
		}
		if rec.Database != DatabaseNone {
			t.Errorf("Database = %q, want none", rec.Database)
		}
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadPreset(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrPresetNotFound) {
			t.Errorf("expected ErrPresetNotFound, got: %v", err)
		}
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		path := writePreset(t, "name: [unclosed")
		_, err := LoadPreset(path)
		if !errors.Is(err, ErrInvalidYAML) {
			t.Errorf("expected ErrInvalidYAML, got: %v", err)
		}
	})

	t.Run("invalid_record", func(t *testing.T) {
		path := writePreset(t, "name: ok\ntype: spaceship\n")
		_, err := LoadPreset(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got: %v", err)
		}
	})
}
