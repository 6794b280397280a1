package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/stackgen-dev/stackgen/internal/cli/wizard"
	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/runner"
	"github.com/stackgen-dev/stackgen/internal/scaffold"
	"github.com/stackgen-dev/stackgen/internal/ui"
	"github.com/stackgen-dev/stackgen/pkg/version"
)

var newCmd = &cobra.Command{
	Use:   "new [project-name]",
	Short: "Generate a new project",
	Long: `Generate a new project into ./<project-name>.

Without flags an interactive wizard collects the configuration. Flags,
or a YAML preset via --preset, skip the corresponding questions;
--non-interactive skips the wizard entirely.

Examples:
  stackgen new my-app
  stackgen new my-app --type backend --backend express-ts --database postgresql
  stackgen new my-app --preset stackgen.yaml --non-interactive`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateNewFlags,
	RunE:    runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().String("root", "", "Parent directory for the project (default: current directory)")
	newCmd.Flags().String("type", "", "Project type: fullstack, frontend, or backend")
	newCmd.Flags().String("frontend", "", "Frontend framework: react, react-ts, nextjs, or nextjs-ts")
	newCmd.Flags().String("backend", "", "Backend template: express-js or express-ts")
	newCmd.Flags().String("database", "", "Database: none, mongodb, or postgresql")
	newCmd.Flags().StringSlice("features", nil, "Additional features: env, eslint, prettier, mongodb, auth")
	newCmd.Flags().Bool("tailwind", false, "Add Tailwind CSS to the frontend")
	newCmd.Flags().Bool("install", false, "Run the package manager after generation")
	newCmd.Flags().String("preset", "", "YAML preset file with the full configuration")
	newCmd.Flags().Bool("non-interactive", false, "Skip the wizard; use flags and defaults only")
}

func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateNewFlags rejects bad enum values before any work starts.
func validateNewFlags(cmd *cobra.Command, _ []string) error {
	if t := getStringFlag(cmd, "type"); t != "" {
		if !slices.Contains([]string{"fullstack", "frontend", "backend"}, t) {
			return fmt.Errorf("invalid --type value %q: must be one of: fullstack, frontend, backend", t)
		}
	}
	if f := getStringFlag(cmd, "frontend"); f != "" {
		if !slices.Contains([]string{"react", "react-ts", "nextjs", "nextjs-ts"}, f) {
			return fmt.Errorf("invalid --frontend value %q: must be one of: react, react-ts, nextjs, nextjs-ts", f)
		}
	}
	if b := getStringFlag(cmd, "backend"); b != "" {
		if !slices.Contains([]string{"express-js", "express-ts"}, b) {
			return fmt.Errorf("invalid --backend value %q: must be one of: express-js, express-ts", b)
		}
	}
	if d := getStringFlag(cmd, "database"); d != "" {
		if !slices.Contains([]string{"none", "mongodb", "postgresql"}, d) {
			return fmt.Errorf("invalid --database value %q: must be one of: none, mongodb, postgresql", d)
		}
	}
	return nil
}

// runNew collects the configuration record and hands it to the
// coordinator.
func runNew(cmd *cobra.Command, args []string) error {
	rec, err := collectRecord(cmd, args)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Generation cancelled.")
			return nil
		}
		return err
	}

	parent := getStringFlag(cmd, "root")
	if parent == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		parent = cwd
	}
	projectRoot, err := filepath.Abs(filepath.Join(parent, rec.ProjectName))
	if err != nil {
		return fmt.Errorf("resolve project path: %w", err)
	}

	interactive := !getBoolFlag(cmd, "non-interactive") && isatty.IsTerminal(os.Stdin.Fd())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	run := runner.New(logger)

	coord := scaffold.NewCoordinator(rec, projectRoot, run, logger)
	coord.SetVersion(version.GetVersion())

	detector := ui.NewHeadlessDetector()
	if !interactive {
		detector.ForceHeadless(true)
	}
	styling := rec.HasFrontend() && rec.Frontend.IsVite() && rec.Tailwind
	total := stageCount(rec.HasFrontend(), rec.HasBackend(), styling,
		rec.WantsEnvFile() || len(rec.Features) > 0, rec.Install)
	reporter, finish := newReporter(cmd.OutOrStdout(), theme, detector,
		"Generating "+rec.ProjectName, total, interactive)
	coord.SetReporter(reporter)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := coord.Execute(ctx)
	finish()
	if err != nil {
		if interactive {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), theme.Fail.Render("✗ Generation failed"))
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	printSummary(cmd, rec, result, interactive)
	return nil
}

// collectRecord builds the record from, in priority order: preset file,
// flags, and (when interactive) the wizard.
func collectRecord(cmd *cobra.Command, args []string) (*config.Record, error) {
	if preset := getStringFlag(cmd, "preset"); preset != "" {
		rec, err := config.LoadPreset(preset)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			rec.ProjectName = args[0]
			if err := rec.Validate(); err != nil {
				return nil, err
			}
		}
		return rec, nil
	}

	rec := config.Record{
		ProjectType: config.ProjectType(getStringFlag(cmd, "type")),
		Frontend:    config.Frontend(getStringFlag(cmd, "frontend")),
		Backend:     config.Backend(getStringFlag(cmd, "backend")),
		Database:    config.Database(getStringFlag(cmd, "database")),
		Tailwind:    getBoolFlag(cmd, "tailwind"),
		Install:     getBoolFlag(cmd, "install"),
	}
	if len(args) > 0 {
		rec.ProjectName = args[0]
	}
	if features, err := cmd.Flags().GetStringSlice("features"); err == nil {
		for _, f := range features {
			rec.Features = append(rec.Features, config.Feature(strings.TrimSpace(f)))
		}
	}

	if !getBoolFlag(cmd, "non-interactive") && isatty.IsTerminal(os.Stdin.Fd()) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), printBanner(version.GetVersion()))
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		return wizard.Run(rec)
	}

	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// printSummary renders the success card and, on a TTY, a README preview.
func printSummary(cmd *cobra.Command, rec *config.Record, result *scaffold.Result, interactive bool) {
	out := cmd.OutOrStdout()

	pairs := []kvPair{
		{"Project", result.ProjectRoot},
	}
	if result.FrontendRoot != "" {
		pairs = append(pairs, kvPair{"Frontend", string(rec.Frontend)})
	}
	if result.BackendRoot != "" {
		pairs = append(pairs, kvPair{"Backend", string(rec.Backend)})
		pairs = append(pairs, kvPair{"Directories", fmt.Sprintf("%d created", len(result.CreatedDirs))})
	}
	pairs = append(pairs, kvPair{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))})

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Project generated", renderKeyValueLines(pairs)))
	if !rec.Install {
		_, _ = fmt.Fprintln(out, theme.Warn.Render("Dependencies were not installed; run npm install in each target before starting."))
	}

	if !interactive {
		return
	}
	rendered, err := glamour.Render(result.Readme, "auto")
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(out, rendered)
}
