package scanner

import (
	"bytes"
	"io"
	"os"

	"github.com/ralt/pacdb/internal/utils"
)

// Magic bytes for compression detection
var (
	// Zstandard frame magic (.db.tar.zst, the repo-add default)
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

	// Gzip magic bytes (.db.tar.gz)
	gzipMagic = []byte{0x1F, 0x8B}

	// XZ magic bytes (.db.tar.xz)
	xzMagic = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
)

// DetectFormat sniffs the compression format from the first bytes of a file.
// Loading does not depend on it; Open always tries every format.
func DetectFormat(path string) (utils.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return utils.FormatUnknown, err
	}
	defer f.Close()

	header := make([]byte, len(xzMagic))
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return utils.FormatUnknown, err
	}

	return DetectFormatBytes(header[:n]), nil
}

// DetectFormatBytes sniffs the compression format of an in-memory header
func DetectFormatBytes(header []byte) utils.Format {
	switch {
	case bytes.HasPrefix(header, zstdMagic):
		return utils.FormatZstd
	case bytes.HasPrefix(header, gzipMagic):
		return utils.FormatGzip
	case bytes.HasPrefix(header, xzMagic):
		return utils.FormatXz
	default:
		return utils.FormatUnknown
	}
}
