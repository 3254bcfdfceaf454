// Package mmfile provides the whole-file loaders used to open containers:
// a plain heap read and a platform-specific read-only memory mapping.
package mmfile

import (
	"fmt"
	"os"
)

func noop() error { return nil }

// Read loads the whole file into memory. The returned release func is a no-op
// so callers can treat both loaders alike.
func Read(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, noop, fmt.Errorf("mmfile: read %s: %w", path, err)
	}
	return data, noop, nil
}
