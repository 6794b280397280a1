// Package plan derives the generation plan for a target: the directories
// to create, the files to write, and the external commands to run. A plan
// executes in fixed stages so ordering never depends on call-site
// discipline.
package plan

import (
	"path"

	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/defs"
)

// baseDirs are the folders every backend gets.
var baseDirs = []string{"routes", "controllers", "middleware", "utils"}

// Directories returns the ordered relative paths of the backend folders
// to create. Parents always precede children, so creating them in order
// never needs a directory that appears later.
//
// Any database choice adds db/ for the connection module; MongoDB adds
// models/, PostgreSQL adds queries/. TypeScript nests everything under
// src/.
func Directories(rec *config.Record) []string {
	dirs := append([]string{}, baseDirs...)

	switch rec.Database {
	case config.DatabaseMongoDB:
		dirs = append(dirs, "models", "db")
	case config.DatabasePostgres:
		dirs = append(dirs, "queries", "db")
	}

	if !rec.Backend.IsTypeScript() {
		return dirs
	}

	nested := make([]string, 0, len(dirs)+1)
	nested = append(nested, defs.SrcDir)
	for _, d := range dirs {
		nested = append(nested, path.Join(defs.SrcDir, d))
	}
	return nested
}
