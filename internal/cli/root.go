// Package cli wires the command surface: flag parsing, the interactive
// wizard, progress display, and the handoff to the scaffold coordinator.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackgen-dev/stackgen/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "stackgen",
	Short: "stackgen: full-stack project scaffolder",
	Long: `stackgen generates a minimal full-stack application skeleton from a
small set of choices: project type, frontend framework, backend template,
database, and optional features.

Frontend scaffolding delegates to the framework's own generator
(create-next-app or create-vite); the Express backend, its manifest, and
its configuration files are generated in-process.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("stackgen %s\n", version.GetFullVersion()))
}
