package utils

import (
	"io"
	"os"
)

// PathExists reports whether path exists. Errors other than "not exist"
// (permission denied on a parent, for instance) are returned as-is.
func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ReadFile reads the whole file, closing it on every path
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
