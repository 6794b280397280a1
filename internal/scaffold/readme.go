package scaffold

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/stackgen-dev/stackgen/internal/config"
)

// frontendNames maps framework variants to their display names.
var frontendNames = map[config.Frontend]string{
	config.FrontendReact:   "React (Vite)",
	config.FrontendReactTS: "React (Vite) + TypeScript",
	config.FrontendNext:    "Next.js",
	config.FrontendNextTS:  "Next.js + TypeScript",
}

// backendNames maps backend variants to their display names.
var backendNames = map[config.Backend]string{
	config.BackendExpressJS: "Express",
	config.BackendExpressTS: "Express + TypeScript",
}

// databaseNames maps database variants to their display names.
var databaseNames = map[config.Database]string{
	config.DatabaseMongoDB:  "MongoDB (Mongoose)",
	config.DatabasePostgres: "PostgreSQL",
}

var titleCaser = cases.Title(language.English)

// BuildReadme renders the top-level README.md summarizing what was
// generated and how to run it.
func BuildReadme(rec *config.Record, version string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", rec.ProjectName)
	fmt.Fprintf(&b, "Generated with stackgen %s.\n\n", version)

	b.WriteString("## Stack\n\n")
	if rec.HasFrontend() {
		fmt.Fprintf(&b, "- Frontend: %s", frontendNames[rec.Frontend])
		if rec.Tailwind {
			b.WriteString(" with Tailwind CSS")
		}
		b.WriteString("\n")
	}
	if rec.HasBackend() {
		fmt.Fprintf(&b, "- Backend: %s\n", backendNames[rec.Backend])
		if name, ok := databaseNames[rec.Database]; ok {
			fmt.Fprintf(&b, "- Database: %s\n", name)
		}
	}
	if len(rec.Features) > 0 {
		names := make([]string, len(rec.Features))
		for i, f := range rec.Features {
			names[i] = titleCaser.String(string(f))
		}
		fmt.Fprintf(&b, "- Features: %s\n", strings.Join(names, ", "))
	}
	b.WriteString("\n")

	b.WriteString("## Getting started\n\n")
	switch rec.ProjectType {
	case config.TypeFullstack:
		writeTargetUsage(&b, "frontend", rec.Install)
		writeTargetUsage(&b, "backend", rec.Install)
	default:
		b.WriteString("```sh\n")
		if !rec.Install {
			b.WriteString("npm install\n")
		}
		b.WriteString("npm run dev\n")
		b.WriteString("```\n")
	}

	if rec.WantsEnvFile() {
		b.WriteString("\nEnvironment variables live in the generated `.env` file; adjust them before starting the server.\n")
	}

	return b.String()
}

// writeTargetUsage renders the run instructions for one fullstack target.
func writeTargetUsage(b *strings.Builder, dir string, installed bool) {
	fmt.Fprintf(b, "### %s\n\n", titleCaser.String(dir))
	b.WriteString("```sh\n")
	fmt.Fprintf(b, "cd %s\n", dir)
	if !installed {
		b.WriteString("npm install\n")
	}
	b.WriteString("npm run dev\n")
	b.WriteString("```\n\n")
}
