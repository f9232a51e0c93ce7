package cli

import (
	"github.com/ralt/pacdb/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pacdb",
		Short: "Inspect pacman sync databases",
		Long: `pacdb reads pacman sync databases (core.db, extra.db, ...) and
prints package metadata.

Databases may be compressed with zstd, gzip or xz. By default every
*.db file in the sync directory is read; --db forces a single file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("db", "", "Use this database file instead of scanning the sync directory")
	rootCmd.PersistentFlags().String("db-dir", models.DefaultDBDir, "Directory holding *.db sync databases")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")

	// Add subcommands
	rootCmd.AddCommand(NewInfoCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewDumpCmd())
	rootCmd.AddCommand(NewDbsCmd())

	return rootCmd
}
