// Package defs holds file names, directory names, and permission bits
// shared across the generation pipeline.
package defs

import "io/fs"

// Generated file names.
const (
	// PackageJSON is the npm manifest written at each target root.
	PackageJSON = "package.json"

	// TSConfigJSON is the TypeScript compiler configuration for TS backends.
	TSConfigJSON = "tsconfig.json"

	// EnvFile is the environment variable template file.
	EnvFile = ".env"

	// ReadmeMD is the top-level project summary.
	ReadmeMD = "README.md"

	// ESLintRC is the ESLint configuration written for the eslint feature.
	ESLintRC = ".eslintrc.json"

	// PrettierRC is the Prettier configuration written for the prettier feature.
	PrettierRC = ".prettierrc"

	// GitignoreFile is the ignore file written at the backend root.
	GitignoreFile = ".gitignore"
)

// Target directory names under a fullstack project root.
const (
	FrontendDir = "frontend"
	BackendDir  = "backend"
)

// SrcDir is the source root TypeScript targets nest their code under.
const SrcDir = "src"

// Permission bits for generated artifacts.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)
