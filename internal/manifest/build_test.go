package manifest

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stackgen-dev/stackgen/internal/config"
)

func record(backend config.Backend, db config.Database, features ...config.Feature) *config.Record {
	return &config.Record{
		ProjectName: "api",
		ProjectType: config.TypeBackend,
		Backend:     backend,
		Database:    db,
		Features:    features,
	}
}

// allRecords enumerates every backend configuration the matrix allows.
func allRecords() []*config.Record {
	var recs []*config.Record
	backends := []config.Backend{config.BackendExpressJS, config.BackendExpressTS}
	databases := []config.Database{config.DatabaseNone, config.DatabaseMongoDB, config.DatabasePostgres}
	featureSets := [][]config.Feature{
		nil,
		{config.FeatureEnv},
		{config.FeatureESLint, config.FeaturePrettier},
		{config.FeatureEnv, config.FeatureAuth},
		{config.FeatureEnv, config.FeatureESLint, config.FeaturePrettier, config.FeatureAuth},
	}
	for _, be := range backends {
		for _, db := range databases {
			for _, fs := range featureSets {
				recs = append(recs, record(be, db, fs...))
			}
		}
	}
	return recs
}

func TestBuildInvariants(t *testing.T) {
	for _, rec := range allRecords() {
		m, err := Build(rec)
		if err != nil {
			t.Fatalf("Build(%v/%v/%v) error: %v", rec.Backend, rec.Database, rec.Features, err)
		}

		for name := range m.Dependencies {
			if _, dup := m.DevDependencies[name]; dup {
				t.Errorf("%v/%v: %q in both dependencies and devDependencies", rec.Backend, rec.Database, name)
			}
		}

		for name, cmd := range m.Scripts {
			if cmd == "" {
				t.Errorf("%v/%v: script %q has empty command", rec.Backend, rec.Database, name)
			}
		}

		_, hasBuild := m.Scripts["build"]
		if rec.Backend.IsTypeScript() && !hasBuild {
			t.Errorf("%v: TypeScript manifest missing build script", rec.Database)
		}
		if !rec.Backend.IsTypeScript() && hasBuild {
			t.Errorf("%v: JavaScript manifest should not have build script", rec.Database)
		}
	}
}

func TestBuildDependencyRules(t *testing.T) {
	t.Run("base_stack_always_present", func(t *testing.T) {
		m, err := Build(record(config.BackendExpressJS, config.DatabaseNone))
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		for _, dep := range []string{"express", "cors"} {
			if _, ok := m.Dependencies[dep]; !ok {
				t.Errorf("missing base dependency %q", dep)
			}
		}
		if _, ok := m.Dependencies["dotenv"]; ok {
			t.Error("dotenv should not appear without env feature or database")
		}
	})

	t.Run("dotenv_union_not_duplication", func(t *testing.T) {
		// env feature and mongodb each pull dotenv in; together they
		// must still yield exactly one entry.
		m, err := Build(record(config.BackendExpressJS, config.DatabaseMongoDB, config.FeatureEnv))
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		if v, ok := m.Dependencies["dotenv"]; !ok || v == "" {
			t.Error("dotenv missing")
		}
		if _, ok := m.Dependencies["mongoose"]; !ok {
			t.Error("mongoose missing for mongodb")
		}
	})

	t.Run("postgres_bundles_auth", func(t *testing.T) {
		m, err := Build(record(config.BackendExpressTS, config.DatabasePostgres))
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		for _, dep := range []string{"pg", "bcryptjs", "jsonwebtoken"} {
			if _, ok := m.Dependencies[dep]; !ok {
				t.Errorf("missing postgres dependency %q", dep)
			}
		}
		for _, dep := range []string{"@types/pg", "@types/bcryptjs", "@types/jsonwebtoken"} {
			if _, ok := m.DevDependencies[dep]; !ok {
				t.Errorf("missing type declarations %q", dep)
			}
		}
	})

	t.Run("ts_dev_runner_vs_js_dev_runner", func(t *testing.T) {
		ts, err := Build(record(config.BackendExpressTS, config.DatabaseNone))
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		if _, ok := ts.DevDependencies["ts-node-dev"]; !ok {
			t.Error("TS manifest missing ts-node-dev")
		}
		if _, ok := ts.DevDependencies["nodemon"]; ok {
			t.Error("TS manifest should not carry nodemon")
		}

		js, err := Build(record(config.BackendExpressJS, config.DatabaseNone))
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		if _, ok := js.DevDependencies["nodemon"]; !ok {
			t.Error("JS manifest missing nodemon")
		}
		if _, ok := js.DevDependencies["typescript"]; ok {
			t.Error("JS manifest should not carry typescript")
		}
	})

	t.Run("lint_features_add_dev_deps", func(t *testing.T) {
		m, err := Build(record(config.BackendExpressTS, config.DatabaseNone, config.FeatureESLint, config.FeaturePrettier))
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		for _, dep := range []string{"eslint", "prettier", "@typescript-eslint/parser"} {
			if _, ok := m.DevDependencies[dep]; !ok {
				t.Errorf("missing lint dependency %q", dep)
			}
		}
	})

	t.Run("main_matches_language", func(t *testing.T) {
		ts, _ := Build(record(config.BackendExpressTS, config.DatabaseNone))
		if ts.Main != "dist/server.js" {
			t.Errorf("TS main = %q", ts.Main)
		}
		js, _ := Build(record(config.BackendExpressJS, config.DatabaseNone))
		if js.Main != "server.js" {
			t.Errorf("JS main = %q", js.Main)
		}
	})
}

func TestDepSetConflict(t *testing.T) {
	s := newDepSet()
	s.add("express", "^4.18.2").
		add("express", "^4.18.2"). // identical re-add is a no-op
		add("cors", "^2.8.5")
	if s.err != nil {
		t.Fatalf("unexpected error: %v", s.err)
	}
	if len(s.versions) != 2 {
		t.Errorf("versions = %v", s.versions)
	}

	s.add("express", "^5.0.0")
	if !errors.Is(s.err, ErrDependencyConflict) {
		t.Errorf("expected ErrDependencyConflict, got: %v", s.err)
	}
}

func TestManifestJSON(t *testing.T) {
	m, err := Build(record(config.BackendExpressTS, config.DatabasePostgres, config.FeatureEnv))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	out, err := m.JSON()
	if err != nil {
		t.Fatalf("JSON error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("generated package.json is not valid JSON: %v", err)
	}
	if decoded["name"] != "api" || decoded["version"] != "1.0.0" {
		t.Errorf("decoded = %v", decoded)
	}
}
