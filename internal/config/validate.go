package config

import (
	"regexp"
	"slices"
)

// projectNamePattern restricts project names to filesystem- and
// npm-safe characters.
var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9-_]+$`)

var validFrontends = []Frontend{FrontendReact, FrontendReactTS, FrontendNext, FrontendNextTS}
var validBackends = []Backend{BackendExpressJS, BackendExpressTS}
var validDatabases = []Database{DatabaseNone, DatabaseMongoDB, DatabasePostgres}
var validFeatures = []Feature{FeatureEnv, FeatureESLint, FeaturePrettier, FeatureMongoDB, FeatureAuth}

// Validate checks every invariant of the record and returns a
// *ValidationErrors aggregating all violations, or nil when valid.
//
// The collector is expected to hand the core only valid records; this is
// the core's last line of defense against generating inconsistent output.
func (r *Record) Validate() error {
	var errs []ValidationError

	if r.ProjectName == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "project name is required"})
	} else if !projectNamePattern.MatchString(r.ProjectName) {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "must contain only letters, digits, hyphens, and underscores",
			Value:   r.ProjectName,
		})
	}

	switch r.ProjectType {
	case TypeFullstack, TypeFrontend, TypeBackend:
	default:
		errs = append(errs, ValidationError{
			Field:   "type",
			Message: "must be one of: fullstack, frontend, backend",
			Value:   r.ProjectType,
		})
	}

	if r.HasFrontend() {
		if !slices.Contains(validFrontends, r.Frontend) {
			errs = append(errs, ValidationError{
				Field:   "frontend",
				Message: "must be one of: react, react-ts, nextjs, nextjs-ts",
				Value:   r.Frontend,
			})
		}
	} else if r.Frontend != FrontendNone {
		errs = append(errs, ValidationError{
			Field:   "frontend",
			Message: "must not be set for a backend-only project",
			Value:   r.Frontend,
		})
	}

	if r.HasBackend() {
		if !slices.Contains(validBackends, r.Backend) {
			errs = append(errs, ValidationError{
				Field:   "backend",
				Message: "must be one of: express-js, express-ts",
				Value:   r.Backend,
			})
		}
		if r.Database != "" && !slices.Contains(validDatabases, r.Database) {
			errs = append(errs, ValidationError{
				Field:   "database",
				Message: "must be one of: none, mongodb, postgresql",
				Value:   r.Database,
			})
		}
	} else {
		if r.Backend != BackendNone {
			errs = append(errs, ValidationError{
				Field:   "backend",
				Message: "must not be set for a frontend-only project",
				Value:   r.Backend,
			})
		}
		if r.Database != "" && r.Database != DatabaseNone {
			errs = append(errs, ValidationError{
				Field:   "database",
				Message: "requires a backend target",
				Value:   r.Database,
			})
		}
	}

	seen := map[Feature]bool{}
	for _, f := range r.Features {
		if !slices.Contains(validFeatures, f) {
			errs = append(errs, ValidationError{
				Field:   "features",
				Message: "unknown feature; must be one of: env, eslint, prettier, mongodb, auth",
				Value:   f,
			})
			continue
		}
		if seen[f] {
			errs = append(errs, ValidationError{Field: "features", Message: "duplicate feature", Value: f})
		}
		seen[f] = true
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// Normalize fills derived defaults the collector may leave blank: an
// unset database on a backend project becomes DatabaseNone, and the
// mongodb feature flag implies the mongodb database when none was chosen.
func (r *Record) Normalize() {
	if r.HasBackend() && r.Database == "" {
		r.Database = DatabaseNone
	}
	if r.HasBackend() && r.Database == DatabaseNone && r.HasFeature(FeatureMongoDB) {
		r.Database = DatabaseMongoDB
	}
	if !r.HasBackend() {
		r.Database = ""
	}
}
