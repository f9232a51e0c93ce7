package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ralt/pacdb/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormatBytes(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   utils.Format
	}{
		{"zstd", []byte{0x28, 0xB5, 0x2F, 0xFD, 0x00}, utils.FormatZstd},
		{"gzip", []byte{0x1F, 0x8B, 0x08}, utils.FormatGzip},
		{"xz", []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}, utils.FormatXz},
		{"tar", []byte("pkg-1.0/"), utils.FormatUnknown},
		{"empty", nil, utils.FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormatBytes(tt.header))
		})
	}
}

func TestDetectFormatFile(t *testing.T) {
	dir := t.TempDir()

	gz, err := utils.GzipCompress([]byte("payload"))
	require.NoError(t, err)
	path := filepath.Join(dir, "extra.db")
	require.NoError(t, os.WriteFile(path, gz, 0644))

	format, err := DetectFormat(path)
	require.NoError(t, err)
	assert.Equal(t, utils.FormatGzip, format)

	short := filepath.Join(dir, "short.db")
	require.NoError(t, os.WriteFile(short, []byte{0x1F}, 0644))
	format, err = DetectFormat(short)
	require.NoError(t, err)
	assert.Equal(t, utils.FormatUnknown, format)

	_, err = DetectFormat(filepath.Join(dir, "missing.db"))
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, data []byte) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
	}

	write("extra.db", []byte{0x28, 0xB5, 0x2F, 0xFD})
	write("core.db", []byte{0x1F, 0x8B})
	write("core.db.sig", []byte("sig"))
	write("core.files", []byte("files"))
	write("notes.txt", []byte("txt"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.db"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested.db", "inner.db"), []byte("x"), 0644))

	sc := NewFileSystemScanner()
	dbs, err := sc.Scan(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, dbs, 2)
	assert.Equal(t, "core", dbs[0].Name)
	assert.Equal(t, utils.FormatGzip, dbs[0].Format)
	assert.Equal(t, int64(2), dbs[0].Size)
	assert.Equal(t, "extra", dbs[1].Name)
	assert.Equal(t, utils.FormatZstd, dbs[1].Format)
	assert.Equal(t, filepath.Join(dir, "extra.db"), dbs[1].Path)
}

func TestScanFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "custom.db.tar.zst")
	require.NoError(t, os.WriteFile(target, []byte{0x28, 0xB5, 0x2F, 0xFD}, 0644))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "custom.db")))

	dbs, err := NewFileSystemScanner().Scan(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, dbs, 1)
	assert.Equal(t, "custom", dbs[0].Name)
	assert.Equal(t, utils.FormatZstd, dbs[0].Format)
}

func TestScanMissingDir(t *testing.T) {
	_, err := NewFileSystemScanner().Scan(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestScanCancelled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core.db"), []byte("x"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSystemScanner().Scan(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}
