package cli

import (
	"github.com/ralt/pacdb/internal/report"
	"github.com/ralt/pacdb/internal/syncdb"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewDumpCmd creates the dump command
func NewDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Serialize every database with all package metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			paths, err := databasePaths(cmd.Context(), config)
			if err != nil {
				return err
			}

			dbs := make([]*syncdb.Database, 0, len(paths))
			for _, path := range paths {
				db, err := syncdb.Open(path)
				if err != nil {
					return err
				}
				logrus.Debugf("Loaded %s (%d packages)", path, db.Len())
				dbs = append(dbs, db)
			}

			return report.WriteDatabases(cmd.OutOrStdout(), config.Format, dbs)
		},
	}

	cmd.Flags().StringP("format", "f", report.FormatJSON, "Output format: json, yaml or text")

	return cmd
}
