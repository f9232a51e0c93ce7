package syncdb

import (
	"errors"
	"io"
	"sort"

	"github.com/ralt/pacdb/internal/models"
	"github.com/ralt/pacdb/internal/utils"
	"github.com/sirupsen/logrus"
)

// Database is one loaded sync database
type Database struct {
	file     string
	signed   bool
	format   utils.Format
	packages map[string]*models.Package
}

// Open loads the sync database at path. Either every desc entry parses
// and a complete Database is returned, or nothing is: a single malformed
// entry fails the whole load.
func Open(path string) (*Database, error) {
	exists, err := utils.PathExists(path)
	if err != nil {
		return nil, &models.DBError{Kind: models.KindIO, Path: path, Err: err}
	}
	if !exists {
		return nil, &models.DBError{Kind: models.KindNotFound, Path: path, Err: errors.New("file not found")}
	}

	raw, err := utils.ReadFile(path)
	if err != nil {
		return nil, &models.DBError{Kind: models.KindIO, Path: path, Err: err}
	}

	decoded, err := utils.Decompress(raw)
	if err != nil {
		return nil, &models.DBError{Kind: models.KindDecode, Path: path, Err: err}
	}
	logrus.Debugf("Decoded %s as %s (%d bytes)", path, decoded.Format, len(decoded.Data))

	packages, err := readPackages(path, decoded.Data)
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Loaded %d packages from %s", len(packages), path)

	return &Database{
		file:     path,
		signed:   false,
		format:   decoded.Format,
		packages: packages,
	}, nil
}

func readPackages(path string, data []byte) (map[string]*models.Package, error) {
	packages := make(map[string]*models.Package)

	ar := newArchiveReader(data)
	for {
		e, err := ar.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &models.DBError{Kind: models.KindArchive, Path: path, Err: err}
		}

		pkg, err := ParseDesc(e.content)
		if err != nil {
			return nil, &models.DBError{Kind: models.KindParse, Path: path, Entry: e.name, Err: err}
		}

		if _, dup := packages[pkg.Name()]; dup {
			logrus.Debugf("Duplicate package %s in %s, keeping %s", pkg.Name(), path, e.name)
		}
		packages[pkg.Name()] = pkg
	}

	return packages, nil
}

// File returns the path the database was loaded from
func (db *Database) File() string {
	return db.file
}

// Signed reports signature verification status. Verification is not
// performed, so this is always false.
func (db *Database) Signed() bool {
	return db.signed
}

// Format returns the compression format the database was stored in
func (db *Database) Format() utils.Format {
	return db.format
}

// Lookup finds a package by exact name
func (db *Database) Lookup(name string) (*models.Package, bool) {
	pkg, ok := db.packages[name]
	return pkg, ok
}

// Packages returns every package keyed by name. The map is a copy;
// the packages themselves are immutable.
func (db *Database) Packages() map[string]*models.Package {
	packages := make(map[string]*models.Package, len(db.packages))
	for name, pkg := range db.packages {
		packages[name] = pkg
	}
	return packages
}

// Names returns the package names in sorted order
func (db *Database) Names() []string {
	names := make([]string, 0, len(db.packages))
	for name := range db.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of packages
func (db *Database) Len() int {
	return len(db.packages)
}
