package template

import (
	"fmt"

	"github.com/stackgen-dev/stackgen/internal/config"
)

// Role identifies one generated backend file.
type Role string

const (
	// RoleServerEntry is the backend entry point (server.js / src/server.ts).
	RoleServerEntry Role = "server-entry"

	// RoleDatabase is the database connection module.
	RoleDatabase Role = "database"

	// RoleModel is the data layer: a Mongoose model for MongoDB, a SQL
	// query module for PostgreSQL.
	RoleModel Role = "model"

	// RoleController is the sample controller.
	RoleController Role = "controller"

	// RoleRoutes is the sample route file.
	RoleRoutes Role = "routes"
)

// variantKey selects a template variant: database choice crossed with
// whether the backend is TypeScript.
type variantKey struct {
	database   config.Database
	typescript bool
}

// registry maps every legal (role, database, language) combination to its
// template text. Combinations absent from the map are programming errors.
var registry = map[Role]map[variantKey]string{
	RoleServerEntry: {
		{config.DatabaseNone, false}:     serverEntryPlainJS,
		{config.DatabaseNone, true}:      serverEntryPlainTS,
		{config.DatabaseMongoDB, false}:  serverEntryMongoJS,
		{config.DatabaseMongoDB, true}:   serverEntryMongoTS,
		{config.DatabasePostgres, false}: serverEntryPostgresJS,
		{config.DatabasePostgres, true}:  serverEntryPostgresTS,
	},
	RoleDatabase: {
		{config.DatabaseMongoDB, false}:  databaseMongoJS,
		{config.DatabaseMongoDB, true}:   databaseMongoTS,
		{config.DatabasePostgres, false}: databasePostgresJS,
		{config.DatabasePostgres, true}:  databasePostgresTS,
	},
	RoleModel: {
		{config.DatabaseMongoDB, false}:  modelMongoJS,
		{config.DatabaseMongoDB, true}:   modelMongoTS,
		{config.DatabasePostgres, false}: queriesPostgresJS,
		{config.DatabasePostgres, true}:  queriesPostgresTS,
	},
	RoleController: {
		{config.DatabaseMongoDB, false}:  controllerMongoJS,
		{config.DatabaseMongoDB, true}:   controllerMongoTS,
		{config.DatabasePostgres, false}: controllerPostgresJS,
		{config.DatabasePostgres, true}:  controllerPostgresTS,
	},
	RoleRoutes: {
		{config.DatabaseMongoDB, false}:  routesMongoJS,
		{config.DatabaseMongoDB, true}:   routesMongoTS,
		{config.DatabasePostgres, false}: routesPostgresJS,
		{config.DatabasePostgres, true}:  routesPostgresTS,
	},
}

// Render returns the content for the given role, routed by the record's
// database and language. It is pure: the same (role, record) pair always
// yields the same content.
func Render(role Role, rec *config.Record) (string, error) {
	variants, ok := registry[role]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	db := rec.Database
	if db == "" {
		db = config.DatabaseNone
	}
	key := variantKey{database: db, typescript: rec.Backend.IsTypeScript()}
	text, ok := variants[key]
	if !ok {
		return "", fmt.Errorf("%w: %q with database %q", ErrUnknownRole, role, rec.Database)
	}

	return render(string(role), text, newContext(rec))
}
