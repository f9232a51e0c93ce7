package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ralt/pacdb/internal/utils"
	"github.com/sirupsen/logrus"
)

// FileSystemScanner implements Scanner interface for a pacman sync directory
type FileSystemScanner struct{}

var _ Scanner = (*FileSystemScanner)(nil)

// NewFileSystemScanner creates a new filesystem scanner
func NewFileSystemScanner() *FileSystemScanner {
	return &FileSystemScanner{}
}

// Scan lists *.db files directly inside dir, sorted by file name.
// Subdirectories are not descended into. Symlinks are followed, since
// repo-add publishes "<repo>.db" as a link to "<repo>.db.tar.zst".
func (s *FileSystemScanner) Scan(ctx context.Context, dir string) ([]ScannedDatabase, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sync directory: %w", err)
	}

	var databases []ScannedDatabase

	for _, entry := range entries {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if filepath.Ext(entry.Name()) != DatabaseExt {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			logrus.Warnf("Failed to stat %s: %v", path, err)
			continue
		}

		if !info.Mode().IsRegular() {
			continue
		}

		format, err := s.DetectFormat(path)
		if err != nil {
			logrus.Warnf("Failed to detect format for %s: %v", path, err)
		}

		logrus.Debugf("Found %s database: %s", format, path)

		databases = append(databases, ScannedDatabase{
			Path:   path,
			Name:   strings.TrimSuffix(entry.Name(), DatabaseExt),
			Format: format,
			Size:   info.Size(),
		})
	}

	sort.Slice(databases, func(i, j int) bool {
		return databases[i].Path < databases[j].Path
	})

	logrus.Debugf("Found %d databases in %s", len(databases), dir)
	return databases, nil
}

// DetectFormat determines the compression format of a database file
func (s *FileSystemScanner) DetectFormat(path string) (utils.Format, error) {
	return DetectFormat(path)
}
