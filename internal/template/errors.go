// Package template maps (file role, database, language) to generated file
// content. Every variant is a complete, independently testable template;
// callers select by role and the registry routes to the matching variant.
package template

import "errors"

// Sentinel errors for template rendering.
var (
	// ErrUnknownRole indicates a (role, database) pair no variant covers.
	// This is a programming error in the caller, not a runtime input error.
	ErrUnknownRole = errors.New("template: no variant for role")

	// ErrMissingTemplateKey indicates a template referenced a context key
	// that was not provided (strict mode).
	ErrMissingTemplateKey = errors.New("template: missing template key")

	// ErrUnexpandedToken indicates rendered output still contains an
	// unexpanded template token.
	ErrUnexpandedToken = errors.New("template: unexpanded token in rendered output")
)
