// Package testutil builds sync database fixtures for tests.
package testutil

import (
	"archive/tar"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

// Package describes a fixture package
type Package struct {
	Name    string
	Version string
	Arch    string
	Depends []string
}

// Desc renders a desc file the way repo-add lays it out
func Desc(pkg Package) string {
	var buf bytes.Buffer

	writeField := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&buf, "%%%s%%\n%s\n\n", name, value)
		}
	}

	writeField("FILENAME", fmt.Sprintf("%s-%s-%s.pkg.tar.zst", pkg.Name, pkg.Version, pkg.Arch))
	writeField("NAME", pkg.Name)
	writeField("VERSION", pkg.Version)
	writeField("ARCH", pkg.Arch)

	if len(pkg.Depends) > 0 {
		buf.WriteString("%DEPENDS%\n")
		for _, dep := range pkg.Depends {
			buf.WriteString(dep + "\n")
		}
		buf.WriteString("\n")
	}

	return buf.String()
}

// File is one tar entry
type File struct {
	Name    string
	Content string
	Dir     bool
}

// Layout lays packages out as <name>-<version>/desc with a directory entry
// and an unrelated "files" sibling, like a real sync database
func Layout(pkgs ...Package) []File {
	var files []File
	for _, pkg := range pkgs {
		dir := fmt.Sprintf("%s-%s/", pkg.Name, pkg.Version)
		files = append(files,
			File{Name: dir, Dir: true},
			File{Name: dir + "desc", Content: Desc(pkg)},
			File{Name: dir + "files", Content: "%FILES%\nusr/\nusr/bin/" + pkg.Name + "\n"},
		)
	}
	return files
}

// Tar builds an uncompressed tar archive
func Tar(t *testing.T, files []File) []byte {
	t.Helper()

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	for _, f := range files {
		if f.Dir {
			require.NoError(t, tw.WriteHeader(&tar.Header{
				Name:     f.Name,
				Mode:     0755,
				Typeflag: tar.TypeDir,
			}))
			continue
		}

		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     f.Name,
			Mode:     0644,
			Size:     int64(len(f.Content)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(f.Content))
		require.NoError(t, err)
	}

	require.NoError(t, tw.Close())
	return buf.Bytes()
}

// Zstd compresses data as a single zstd frame
func Zstd(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// Gzip compresses data as one gzip member
func Gzip(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// GzipMultiMember splits data into two concatenated gzip members
func GzipMultiMember(t *testing.T, data []byte) []byte {
	t.Helper()

	half := len(data) / 2
	out := Gzip(t, data[:half])
	return append(out, Gzip(t, data[half:])...)
}

// Xz compresses data as an xz stream
func Xz(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = xw.Write(data)
	require.NoError(t, err)
	require.NoError(t, xw.Close())
	return buf.Bytes()
}

// WriteDB writes data to name inside dir, or a fresh temp dir when dir is ""
func WriteDB(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}
