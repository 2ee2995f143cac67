package fu

import (
	"go-ml.dev/pkg/iokit"
	"os"
	"path/filepath"
)

/*
DatasetPath resolves a dataset file name. Absolute paths and paths existing
relative to the working directory are returned as is, anything else is
looked up in the go-ml datasets cache.
*/
func DatasetPath(s string) string {
	if filepath.IsAbs(s) {
		return s
	}
	if _, err := os.Stat(s); err == nil {
		return s
	}
	return iokit.CacheFile(filepath.Join("go-ml", "Datasets", s))
}
