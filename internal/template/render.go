package template

import (
	"bytes"
	"fmt"
	"regexp"
	"text/template"

	"github.com/stackgen-dev/stackgen/internal/config"
)

// Context carries the values template variants may reference.
type Context struct {
	ProjectName string
	Database    string
}

// newContext builds a rendering context from the record.
func newContext(rec *config.Record) Context {
	return Context{
		ProjectName: rec.ProjectName,
		Database:    string(rec.Database),
	}
}

// leftoverTokenPattern detects unexpanded Go template tokens in rendered
// output. Generated JS legitimately contains ${...} and $VAR, so only
// {{...}} is treated as a leftover.
var leftoverTokenPattern = regexp.MustCompile(`\{\{[^}]*\}\}`)

// render executes template text with strict mode enabled, then verifies
// no template tokens survived in the output.
func render(name, text string, ctx Context) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("template parse %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	if loc := leftoverTokenPattern.Find(buf.Bytes()); loc != nil {
		return "", fmt.Errorf("%w: found %q in %q", ErrUnexpandedToken, string(loc), name)
	}

	return buf.String(), nil
}
