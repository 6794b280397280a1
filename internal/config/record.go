package config

import "slices"

// ProjectType selects which targets a project generates.
type ProjectType string

const (
	TypeFullstack ProjectType = "fullstack"
	TypeFrontend  ProjectType = "frontend"
	TypeBackend   ProjectType = "backend"
)

// Frontend identifies the frontend framework variant.
type Frontend string

const (
	FrontendNone    Frontend = ""
	FrontendReact   Frontend = "react"
	FrontendReactTS Frontend = "react-ts"
	FrontendNext    Frontend = "nextjs"
	FrontendNextTS  Frontend = "nextjs-ts"
)

// IsTypeScript reports whether the variant scaffolds TypeScript sources.
func (f Frontend) IsTypeScript() bool {
	return f == FrontendReactTS || f == FrontendNextTS
}

// IsNext reports whether the variant belongs to the Next.js family.
func (f Frontend) IsNext() bool {
	return f == FrontendNext || f == FrontendNextTS
}

// IsVite reports whether the variant belongs to the Vite/React family.
func (f Frontend) IsVite() bool {
	return f == FrontendReact || f == FrontendReactTS
}

// Backend identifies the backend framework variant.
type Backend string

const (
	BackendNone      Backend = ""
	BackendExpressJS Backend = "express-js"
	BackendExpressTS Backend = "express-ts"
)

// IsTypeScript reports whether the variant scaffolds TypeScript sources.
func (b Backend) IsTypeScript() bool {
	return b == BackendExpressTS
}

// Database identifies the backend data layer.
type Database string

const (
	DatabaseNone     Database = "none"
	DatabaseMongoDB  Database = "mongodb"
	DatabasePostgres Database = "postgresql"
)

// Feature is an optional add-on selected at generation time.
type Feature string

const (
	FeatureEnv      Feature = "env"
	FeatureESLint   Feature = "eslint"
	FeaturePrettier Feature = "prettier"
	FeatureMongoDB  Feature = "mongodb"
	FeatureAuth     Feature = "auth"
)

// Record is the single source of truth for one generation run. The
// collectors (flags, wizard, preset file) all produce a Record; the
// generation core consumes one and nothing else.
type Record struct {
	ProjectName string      `yaml:"name"`
	ProjectType ProjectType `yaml:"type"`

	Frontend Frontend `yaml:"frontend,omitempty"`
	Tailwind bool     `yaml:"tailwind,omitempty"`

	Backend  Backend  `yaml:"backend,omitempty"`
	Database Database `yaml:"database,omitempty"`

	Features []Feature `yaml:"features,omitempty"`
	Install  bool      `yaml:"install,omitempty"`
}

// HasFrontend reports whether the project generates a frontend target.
func (r *Record) HasFrontend() bool {
	return r.ProjectType == TypeFullstack || r.ProjectType == TypeFrontend
}

// HasBackend reports whether the project generates a backend target.
func (r *Record) HasBackend() bool {
	return r.ProjectType == TypeFullstack || r.ProjectType == TypeBackend
}

// HasFeature reports whether f was selected.
func (r *Record) HasFeature(f Feature) bool {
	return slices.Contains(r.Features, f)
}

// WantsEnvFile reports whether generation writes an environment template.
// The env feature requests one explicitly; choosing any backend database
// implies one, because the connection settings have to live somewhere.
func (r *Record) WantsEnvFile() bool {
	if r.HasFeature(FeatureEnv) {
		return true
	}
	return r.HasBackend() && r.Database != "" && r.Database != DatabaseNone
}

// WantsAuth reports whether the backend gets the authentication bundle.
// The auth feature requests it explicitly; the PostgreSQL variant ships
// with register/login handlers and implies it.
func (r *Record) WantsAuth() bool {
	return r.HasFeature(FeatureAuth) || r.Database == DatabasePostgres
}
