//go:build !unix

package mmfile

import (
	"fmt"
	"os"
)

func noop() error { return nil }

// Map reads the whole file into memory on platforms where it is not mapped.
// The cleanup function is a no-op.
func Map(path string) ([]byte, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, noop, err
	}
	if info.IsDir() {
		return nil, noop, fmt.Errorf("mmfile: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, noop, err
	}
	return data, noop, nil
}
