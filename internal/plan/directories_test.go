package plan

import (
	"path"
	"slices"
	"testing"

	"github.com/stackgen-dev/stackgen/internal/config"
)

func record(backend config.Backend, db config.Database) *config.Record {
	return &config.Record{
		ProjectName: "api",
		ProjectType: config.TypeBackend,
		Backend:     backend,
		Database:    db,
	}
}

func TestDirectories(t *testing.T) {
	tests := []struct {
		name string
		rec  *config.Record
		want []string
	}{
		{
			"js_no_database",
			record(config.BackendExpressJS, config.DatabaseNone),
			[]string{"routes", "controllers", "middleware", "utils"},
		},
		{
			"js_mongodb",
			record(config.BackendExpressJS, config.DatabaseMongoDB),
			[]string{"routes", "controllers", "middleware", "utils", "models", "db"},
		},
		{
			"js_postgresql",
			record(config.BackendExpressJS, config.DatabasePostgres),
			[]string{"routes", "controllers", "middleware", "utils", "queries", "db"},
		},
		{
			"ts_no_database",
			record(config.BackendExpressTS, config.DatabaseNone),
			[]string{"src", "src/routes", "src/controllers", "src/middleware", "src/utils"},
		},
		{
			"ts_mongodb",
			record(config.BackendExpressTS, config.DatabaseMongoDB),
			[]string{"src", "src/routes", "src/controllers", "src/middleware", "src/utils", "src/models", "src/db"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Directories(tt.rec)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Directories() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectoriesParentsPrecedeChildren(t *testing.T) {
	for _, rec := range []*config.Record{
		record(config.BackendExpressJS, config.DatabaseMongoDB),
		record(config.BackendExpressTS, config.DatabaseMongoDB),
		record(config.BackendExpressTS, config.DatabasePostgres),
	} {
		dirs := Directories(rec)
		seen := map[string]bool{".": true}
		for _, d := range dirs {
			parent := path.Dir(d)
			if !seen[parent] {
				t.Errorf("%v: directory %q listed before its parent %q", rec.Backend, d, parent)
			}
			seen[d] = true
		}
	}
}
