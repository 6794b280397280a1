// Package wizard collects the configuration record interactively. It is
// the only place the tool prompts; the generation engine itself receives
// a finished record and never asks questions.
package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/stackgen-dev/stackgen/internal/config"
)

// ErrCancelled indicates the user aborted the wizard.
var ErrCancelled = errors.New("wizard cancelled")

// Run prompts for every choice the record needs and returns a normalized,
// validated record. defaults pre-populates answers (from flags); only
// unanswered fields are asked.
func Run(defaults config.Record) (*config.Record, error) {
	rec := defaults
	if rec.ProjectType == "" {
		rec.ProjectType = config.TypeFullstack
	}

	var features []string
	for _, f := range rec.Features {
		features = append(features, string(f))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Letters, digits, hyphens, and underscores only.").
				Validate(validateName).
				Value(&rec.ProjectName),
			huh.NewSelect[config.ProjectType]().
				Title("Project type").
				Options(
					huh.NewOption("Fullstack (frontend + backend)", config.TypeFullstack),
					huh.NewOption("Frontend only", config.TypeFrontend),
					huh.NewOption("Backend only", config.TypeBackend),
				).
				Value(&rec.ProjectType),
		),
		huh.NewGroup(
			huh.NewSelect[config.Frontend]().
				Title("Frontend framework").
				Options(
					huh.NewOption("React (Vite)", config.FrontendReact),
					huh.NewOption("React (Vite) + TypeScript", config.FrontendReactTS),
					huh.NewOption("Next.js", config.FrontendNext),
					huh.NewOption("Next.js + TypeScript", config.FrontendNextTS),
				).
				Value(&rec.Frontend),
			huh.NewConfirm().
				Title("Add Tailwind CSS?").
				Value(&rec.Tailwind),
		).WithHideFunc(func() bool { return !rec.HasFrontend() }),
		huh.NewGroup(
			huh.NewSelect[config.Backend]().
				Title("Backend template").
				Options(
					huh.NewOption("Express (JavaScript)", config.BackendExpressJS),
					huh.NewOption("Express (TypeScript)", config.BackendExpressTS),
				).
				Value(&rec.Backend),
			huh.NewSelect[config.Database]().
				Title("Database").
				Options(
					huh.NewOption("None", config.DatabaseNone),
					huh.NewOption("MongoDB (Mongoose)", config.DatabaseMongoDB),
					huh.NewOption("PostgreSQL", config.DatabasePostgres),
				).
				Value(&rec.Database),
		).WithHideFunc(func() bool { return !rec.HasBackend() }),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Additional features").
				Options(
					huh.NewOption("Environment file (.env)", "env"),
					huh.NewOption("ESLint", "eslint"),
					huh.NewOption("Prettier", "prettier"),
					huh.NewOption("Auth (JWT)", "auth"),
				).
				Value(&features),
			huh.NewConfirm().
				Title("Install dependencies now?").
				Value(&rec.Install),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	rec.Features = rec.Features[:0]
	for _, f := range features {
		rec.Features = append(rec.Features, config.Feature(f))
	}

	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// validateName rejects empty or unsafe project names at prompt time so
// the user can correct them immediately.
func validateName(s string) error {
	candidate := config.Record{ProjectName: s, ProjectType: config.TypeBackend, Backend: config.BackendExpressJS}
	if s == "" {
		return errors.New("project name is required")
	}
	if err := candidate.Validate(); err != nil {
		return errors.New("use only letters, digits, hyphens, and underscores")
	}
	return nil
}
