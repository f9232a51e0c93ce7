package scanner

import (
	"context"

	"github.com/ralt/pacdb/internal/utils"
)

// DatabaseExt is the extension pacman gives sync databases
const DatabaseExt = ".db"

// ScannedDatabase represents a sync database file found during scanning
type ScannedDatabase struct {
	Path   string
	Name   string // repository name, e.g. "core"
	Format utils.Format
	Size   int64
}

// Scanner interface for finding sync databases
type Scanner interface {
	// Scan lists the sync databases directly inside dir
	Scan(ctx context.Context, dir string) ([]ScannedDatabase, error)

	// DetectFormat determines the compression of a database file
	DetectFormat(path string) (utils.Format, error)
}
