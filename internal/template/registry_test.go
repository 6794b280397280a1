package template

import (
	"errors"
	"strings"
	"testing"

	"github.com/stackgen-dev/stackgen/internal/config"
)

func backendRecord(db config.Database, backend config.Backend) *config.Record {
	return &config.Record{
		ProjectName: "sample-api",
		ProjectType: config.TypeBackend,
		Backend:     backend,
		Database:    db,
	}
}

func TestRenderRoutesAllVariants(t *testing.T) {
	databases := []config.Database{config.DatabaseMongoDB, config.DatabasePostgres}
	backends := []config.Backend{config.BackendExpressJS, config.BackendExpressTS}

	dataRoles := []Role{RoleDatabase, RoleModel, RoleController, RoleRoutes}

	for _, db := range databases {
		for _, be := range backends {
			rec := backendRecord(db, be)
			for _, role := range dataRoles {
				t.Run(string(db)+"_"+string(be)+"_"+string(role), func(t *testing.T) {
					content, err := Render(role, rec)
					if err != nil {
						t.Fatalf("Render error: %v", err)
					}
					if content == "" {
						t.Fatal("empty content")
					}
					if strings.Contains(content, "{{") {
						t.Errorf("unexpanded token in content:\n%s", content)
					}
				})
			}
		}
	}
}

func TestRenderServerEntry(t *testing.T) {
	t.Run("none_is_runnable_minimal_server", func(t *testing.T) {
		rec := backendRecord(config.DatabaseNone, config.BackendExpressJS)
		content, err := Render(RoleServerEntry, rec)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(content, "app.listen(PORT") {
			t.Error("entry should start a server")
		}
		if strings.Contains(content, "dotenv") || strings.Contains(content, "connect") {
			t.Error("database-free entry should not reference a data layer")
		}
	})

	t.Run("interpolates_project_name", func(t *testing.T) {
		rec := backendRecord(config.DatabaseMongoDB, config.BackendExpressTS)
		content, err := Render(RoleServerEntry, rec)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(content, "sample-api") {
			t.Error("project name not interpolated")
		}
	})

	t.Run("typescript_uses_imports", func(t *testing.T) {
		rec := backendRecord(config.DatabasePostgres, config.BackendExpressTS)
		content, err := Render(RoleServerEntry, rec)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(content, "import express") {
			t.Error("TS entry should use ES imports")
		}
		if strings.Contains(content, "require(") {
			t.Error("TS entry should not use require")
		}
	})
}

func TestRenderUnknownCombination(t *testing.T) {
	t.Run("unknown_role", func(t *testing.T) {
		rec := backendRecord(config.DatabaseMongoDB, config.BackendExpressJS)
		_, err := Render(Role("migration"), rec)
		if !errors.Is(err, ErrUnknownRole) {
			t.Errorf("expected ErrUnknownRole, got: %v", err)
		}
	})

	t.Run("data_role_without_database", func(t *testing.T) {
		rec := backendRecord(config.DatabaseNone, config.BackendExpressJS)
		_, err := Render(RoleModel, rec)
		if !errors.Is(err, ErrUnknownRole) {
			t.Errorf("expected ErrUnknownRole, got: %v", err)
		}
	})
}

func TestRenderRouteControllerContractMatches(t *testing.T) {
	// The routes file must import exactly the handlers its controller
	// variant exports.
	for _, be := range []config.Backend{config.BackendExpressJS, config.BackendExpressTS} {
		mongo := backendRecord(config.DatabaseMongoDB, be)
		routes, err := Render(RoleRoutes, mongo)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(routes, "getUsers") || !strings.Contains(routes, "createUser") {
			t.Errorf("%s mongo routes miss controller handlers:\n%s", be, routes)
		}

		pg := backendRecord(config.DatabasePostgres, be)
		routes, err = Render(RoleRoutes, pg)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(routes, "register") || !strings.Contains(routes, "login") {
			t.Errorf("%s postgres routes miss auth handlers:\n%s", be, routes)
		}
	}
}
