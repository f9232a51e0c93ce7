package syncdb

import (
	"archive/tar"
	"bytes"
	"io"
	"path"
)

// descName is the per-package metadata file inside a sync database.
// Siblings such as "files" or "depends" (older layouts) are ignored.
const descName = "desc"

type entry struct {
	name    string
	content []byte
}

// archiveReader walks a tar archive once, yielding only desc entries
type archiveReader struct {
	tr *tar.Reader
}

func newArchiveReader(data []byte) *archiveReader {
	return &archiveReader{tr: tar.NewReader(bytes.NewReader(data))}
}

// Next returns the next desc entry, or io.EOF once the archive is exhausted
func (a *archiveReader) Next() (*entry, error) {
	for {
		header, err := a.tr.Next()
		if err != nil {
			return nil, err
		}

		if !isDescEntry(header) {
			continue
		}

		content, err := io.ReadAll(a.tr)
		if err != nil {
			return nil, err
		}

		return &entry{name: header.Name, content: content}, nil
	}
}

// isDescEntry matches regular files whose last path component is "desc"
func isDescEntry(header *tar.Header) bool {
	if !header.FileInfo().Mode().IsRegular() {
		return false
	}
	return path.Base(header.Name) == descName
}
