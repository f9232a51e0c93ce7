package utils

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

var payload = bytes.Repeat([]byte("%NAME%\npkg\n\n"), 64)

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func xzBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecompress(t *testing.T) {
	gz, err := GzipCompress(payload)
	require.NoError(t, err)

	tests := []struct {
		name   string
		raw    []byte
		format Format
	}{
		{"zstd", zstdBytes(t, payload), FormatZstd},
		{"gzip", gz, FormatGzip},
		{"xz", xzBytes(t, payload), FormatXz},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Decompress(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.format, res.Format)
			assert.Equal(t, payload, res.Data)
		})
	}
}

func TestDecompressMultiMemberGzip(t *testing.T) {
	first, err := GzipCompress([]byte("first member\n"))
	require.NoError(t, err)
	second, err := GzipCompress([]byte("second member\n"))
	require.NoError(t, err)

	res, err := Decompress(append(first, second...))
	require.NoError(t, err)
	assert.Equal(t, FormatGzip, res.Format)
	assert.Equal(t, "first member\nsecond member\n", string(res.Data))

	data, err := GzipDecompress(append(first, second...))
	require.NoError(t, err)
	assert.Equal(t, res.Data, data)
}

func TestDecompressEmpty(t *testing.T) {
	res, err := Decompress(nil)
	require.NoError(t, err)
	assert.Equal(t, FormatZstd, res.Format)
	assert.Empty(t, res.Data)
}

func TestDecompressFailure(t *testing.T) {
	_, err := Decompress([]byte("plain text, not compressed at all"))
	require.Error(t, err)

	// Only the last attempt is reported
	assert.Contains(t, err.Error(), "xz:")
	assert.NotContains(t, err.Error(), "zstd:")
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "zstd", FormatZstd.String())
	assert.Equal(t, "gzip", FormatGzip.String())
	assert.Equal(t, "xz", FormatXz.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}
