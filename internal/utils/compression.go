package utils

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"
)

// Format identifies a compression format
type Format int

const (
	FormatUnknown Format = iota
	FormatZstd
	FormatGzip
	FormatXz
)

// String returns the string representation of Format
func (f Format) String() string {
	switch f {
	case FormatZstd:
		return "zstd"
	case FormatGzip:
		return "gzip"
	case FormatXz:
		return "xz"
	default:
		return "unknown"
	}
}

// DecodeResult is the outcome of a successful Decompress
type DecodeResult struct {
	Data   []byte
	Format Format
}

type decodeFunc func(r io.Reader) ([]byte, error)

// decodeOrder is the order formats are attempted in. Sync databases are
// zstd by default, gzip for older repo-add setups and xz for some mirrors.
var decodeOrder = []struct {
	format Format
	decode decodeFunc
}{
	{FormatZstd, ZstdDecompress},
	{FormatGzip, gzipDecompressStream},
	{FormatXz, XzDecompress},
}

// Decompress decodes raw as zstd, falling back to gzip and then xz.
// The input is rewound before every attempt. Only the last attempt's
// error is returned; earlier failures are logged at debug level.
func Decompress(raw []byte) (DecodeResult, error) {
	r := bytes.NewReader(raw)

	var lastErr error
	for _, attempt := range decodeOrder {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return DecodeResult{}, err
		}

		data, err := attempt.decode(r)
		if err == nil {
			return DecodeResult{Data: data, Format: attempt.format}, nil
		}

		logrus.Debugf("%s decoding failed: %v", attempt.format, err)
		lastErr = fmt.Errorf("%s: %w", attempt.format, err)
	}

	return DecodeResult{}, lastErr
}

// ZstdDecompress decodes a zstd stream on the calling goroutine
func ZstdDecompress(r io.Reader) ([]byte, error) {
	zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return io.ReadAll(zr)
}

// GzipCompress compresses data using gzip
func GzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GzipDecompress decompresses gzip data, including multi-member streams
func GzipDecompress(data []byte) ([]byte, error) {
	return gzipDecompressStream(bytes.NewReader(data))
}

func gzipDecompressStream(r io.Reader) ([]byte, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	// Concatenated members decode as one stream
	gr.Multistream(true)

	return io.ReadAll(gr)
}

// XzDecompress decodes an xz stream
func XzDecompress(r io.Reader) ([]byte, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, err
	}

	return io.ReadAll(xr)
}
