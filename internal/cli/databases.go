package cli

import (
	"context"
	"fmt"

	"github.com/ralt/pacdb/internal/models"
	"github.com/ralt/pacdb/internal/scanner"
)

// databasePaths returns the forced database, or every *.db in the sync dir
func databasePaths(ctx context.Context, config *models.Config) ([]string, error) {
	if config.DBPath != "" {
		return []string{config.DBPath}, nil
	}

	scanned, err := scanner.NewFileSystemScanner().Scan(ctx, config.DBDir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(scanned))
	for _, db := range scanned {
		paths = append(paths, db.Path)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no sync databases found in %s", config.DBDir)
	}

	return paths, nil
}
