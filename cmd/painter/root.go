package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/painter/internal/version"
	"github.com/arthur-debert/painter/pkg/logging"
)

var verbosity int

// NewRootCmd builds the painter command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "painter",
		Short: "Showcase and diagnose terminal text styling",
		Long: `painter demonstrates the style composition library this repository ships:
colors, attributes and nested style scopes, rendered directly on your
terminal. Output degrades to plain text on pipes and NO_COLOR.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newThemesCmd())

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("painter version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
