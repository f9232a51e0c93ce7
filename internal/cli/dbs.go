package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/ralt/pacdb/internal/scanner"
	"github.com/ralt/pacdb/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewDbsCmd creates the dbs command
func NewDbsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dbs",
		Short: "List the sync databases that would be read",
		Long: `Lists every candidate database with its detected compression,
size and SHA256 checksum. The format shown is sniffed from magic
bytes; loading tries every format regardless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			paths, err := databasePaths(cmd.Context(), config)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tFORMAT\tSIZE\tSHA256")

			for _, path := range paths {
				format, err := scanner.DetectFormat(path)
				if err != nil {
					return err
				}

				sum, err := utils.CalculateChecksums(path)
				if err != nil {
					logrus.Warnf("Failed to checksum %s: %v", path, err)
					sum = &utils.Checksum{}
				}

				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", filepath.Base(path), format, sum.Size, sum.SHA256)
			}

			return tw.Flush()
		},
	}
}
