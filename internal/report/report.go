package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ralt/pacdb/internal/models"
	"github.com/ralt/pacdb/internal/syncdb"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateFormat rejects unknown output formats
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, FormatText, FormatJSON, FormatYAML)
	}
}

// PackageView is the serialized form of a package
type PackageView struct {
	Name     string              `json:"name" yaml:"name"`
	Metadata map[string][]string `json:"metadata" yaml:"metadata"`
}

// DatabaseView is the serialized form of a database
type DatabaseView struct {
	File     string                 `json:"file" yaml:"file"`
	Signed   bool                   `json:"signed" yaml:"signed"`
	Packages map[string]PackageView `json:"packages" yaml:"packages"`
}

// NewPackageView converts a package for serialization
func NewPackageView(pkg *models.Package) PackageView {
	return PackageView{
		Name:     pkg.Name(),
		Metadata: pkg.Metadata(),
	}
}

// NewDatabaseView converts a database for serialization
func NewDatabaseView(db *syncdb.Database) DatabaseView {
	view := DatabaseView{
		File:     db.File(),
		Signed:   db.Signed(),
		Packages: make(map[string]PackageView, db.Len()),
	}
	for name, pkg := range db.Packages() {
		view.Packages[name] = NewPackageView(pkg)
	}
	return view
}

// encode writes v as JSON or YAML
func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q cannot encode structured data", format)
	}
}

// WriteDatabases dumps every database in the requested format
func WriteDatabases(w io.Writer, format string, dbs []*syncdb.Database) error {
	if format == FormatText {
		for _, db := range dbs {
			fmt.Fprintf(w, "database: %s\n", filepath.Base(db.File()))
			for _, name := range db.Names() {
				pkg, _ := db.Lookup(name)
				fmt.Fprintf(w, "%s\n", pkg.Identity())
				writeFields(w, pkg, "  ")
			}
		}
		return nil
	}

	views := make([]DatabaseView, 0, len(dbs))
	for _, db := range dbs {
		views = append(views, NewDatabaseView(db))
	}
	return encode(w, format, views)
}

// WriteList prints the database name followed by each package name
func WriteList(w io.Writer, db *syncdb.Database) {
	fmt.Fprintf(w, "database: %s\n", filepath.Base(db.File()))
	for _, name := range db.Names() {
		fmt.Fprintln(w, name)
	}
}

// WritePackage prints a package found in db. When keys are given only the
// value lines of those fields are printed, one per line.
func WritePackage(w io.Writer, format string, db *syncdb.Database, pkg *models.Package, keys []string) error {
	if len(keys) > 0 {
		for _, key := range keys {
			for _, line := range pkg.Values(strings.ToLower(key)) {
				fmt.Fprintln(w, line)
			}
		}
		return nil
	}

	if format != FormatText {
		return encode(w, format, NewPackageView(pkg))
	}

	fmt.Fprintf(w, "Found package %s in db %s\n", pkg.Name(), db.File())
	writeFields(w, pkg, "")
	return nil
}

func writeFields(w io.Writer, pkg *models.Package, indent string) {
	md := pkg.Metadata()
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%s%s, %q\n", indent, k, md[k])
	}
}
