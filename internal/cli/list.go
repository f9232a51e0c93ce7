package cli

import (
	"github.com/ralt/pacdb/internal/report"
	"github.com/ralt/pacdb/internal/syncdb"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the packages of every database",
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

			for _, path := range paths {
				db, err := syncdb.Open(path)
				if err != nil {
					return err
				}
				report.WriteList(cmd.OutOrStdout(), db)
			}

			return nil
		},
	}
}
