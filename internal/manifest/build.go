package manifest

import (
	"fmt"

	"github.com/stackgen-dev/stackgen/internal/config"
)

// Pinned version ranges for every package the builder can emit. One
// source of truth per package keeps the depSet conflict guard meaningful.
const (
	verExpress      = "^4.18.2"
	verCors         = "^2.8.5"
	verDotenv       = "^16.3.1"
	verMongoose     = "^8.0.3"
	verPg           = "^8.11.3"
	verBcryptJS     = "^2.4.3"
	verJsonwebtoken = "^9.0.2"
	verNodemon      = "^3.0.2"
	verTypescript   = "^5.3.3"
	verTsNodeDev    = "^2.0.0"
	verTypesExpress = "^4.17.21"
	verTypesCors    = "^2.8.17"
	verTypesNode    = "^20.10.5"
	verTypesPg      = "^8.10.9"
	verTypesBcrypt  = "^2.4.6"
	verTypesJwt     = "^9.0.5"
	verESLint       = "^8.56.0"
	verTSESLint     = "^6.16.0"
	verPrettier     = "^3.1.1"
)

// Build derives the backend package.json from the record. It never emits
// a package in both dependencies and devDependencies, and every script
// carries a non-empty command.
func Build(rec *config.Record) (*Manifest, error) {
	ts := rec.Backend.IsTypeScript()

	deps := newDepSet()
	deps.add("express", verExpress).
		add("cors", verCors)

	// env handling is a union: the env feature and a database choice both
	// pull dotenv in, never twice.
	if rec.WantsEnvFile() {
		deps.add("dotenv", verDotenv)
	}

	switch rec.Database {
	case config.DatabaseMongoDB:
		deps.add("mongoose", verMongoose)
	case config.DatabasePostgres:
		deps.add("pg", verPg)
	}

	// The PostgreSQL sample controller signs tokens and hashes passwords,
	// so those packages ride along with either the auth feature or pg.
	if rec.WantsAuth() {
		deps.add("bcryptjs", verBcryptJS).
			add("jsonwebtoken", verJsonwebtoken)
	}

	dev := newDepSet()
	if ts {
		dev.add("typescript", verTypescript).
			add("ts-node-dev", verTsNodeDev).
			add("@types/express", verTypesExpress).
			add("@types/cors", verTypesCors).
			add("@types/node", verTypesNode)
		if rec.Database == config.DatabasePostgres {
			dev.add("@types/pg", verTypesPg)
		}
		if rec.WantsAuth() {
			dev.add("@types/bcryptjs", verTypesBcrypt).
				add("@types/jsonwebtoken", verTypesJwt)
		}
	} else {
		dev.add("nodemon", verNodemon)
	}

	if rec.HasFeature(config.FeatureESLint) {
		dev.add("eslint", verESLint)
		if ts {
			dev.add("@typescript-eslint/parser", verTSESLint).
				add("@typescript-eslint/eslint-plugin", verTSESLint)
		}
	}
	if rec.HasFeature(config.FeaturePrettier) {
		dev.add("prettier", verPrettier)
	}

	if deps.err != nil {
		return nil, deps.err
	}
	if dev.err != nil {
		return nil, dev.err
	}

	for name := range deps.versions {
		if _, dup := dev.versions[name]; dup {
			return nil, fmt.Errorf("%w: %s appears in both dependencies and devDependencies", ErrDependencyConflict, name)
		}
	}

	m := &Manifest{
		Name:            rec.ProjectName,
		Version:         "1.0.0",
		Scripts:         buildScripts(ts),
		Dependencies:    deps.versions,
		DevDependencies: dev.versions,
	}
	if ts {
		m.Main = "dist/server.js"
	} else {
		m.Main = "server.js"
	}

	for name, cmd := range m.Scripts {
		if cmd == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyScript, name)
		}
	}

	return m, nil
}

// buildScripts returns the script set for the language branch. The TS
// branch is structurally different: it gains a compile step.
func buildScripts(typescript bool) map[string]string {
	if typescript {
		return map[string]string{
			"dev":   "ts-node-dev --respawn src/server.ts",
			"build": "tsc",
			"start": "node dist/server.js",
		}
	}
	return map[string]string{
		"dev":   "nodemon server.js",
		"start": "node server.js",
	}
}
