package cli

import (
	"fmt"

	"github.com/ralt/pacdb/internal/report"
	"github.com/ralt/pacdb/internal/syncdb"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command
func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <package>",
		Short: "Print information about a package",
		Long: `Searches the databases in order and prints the first package
with exactly this name. With --key only the value lines of the
given fields are printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			paths, err := databasePaths(cmd.Context(), config)
			if err != nil {
				return err
			}

			name := args[0]
			out := cmd.OutOrStdout()

			for _, path := range paths {
				db, err := syncdb.Open(path)
				if err != nil {
					logrus.Errorf("Failed to load database %s", path)
					return err
				}

				pkg, ok := db.Lookup(name)
				if !ok {
					continue
				}

				return report.WritePackage(out, config.Format, db, pkg, config.Keys)
			}

			fmt.Fprintln(out, "Package not found")
			return nil
		},
	}

	cmd.Flags().StringSliceP("key", "k", nil, "Only print these fields (e.g. version,depends)")
	cmd.Flags().StringP("format", "f", report.FormatText, "Output format: text, json or yaml")

	return cmd
}
