package fu

import (
	"gotest.tools/assert"
	"os"
	"path/filepath"
	"testing"
)

func Test_Fnzi(t *testing.T) {
	assert.Equal(t, Fnzi(0, 0, 5, 3), 5)
	assert.Equal(t, Fnzi(7, 5), 7)
	assert.Equal(t, Fnzi(0, 0), 0)
	assert.Equal(t, Fnzi(), 0)
}

func Test_Seqi(t *testing.T) {
	assert.DeepEqual(t, Seqi(4), []int{0, 1, 2, 3})
	assert.Equal(t, len(Seqi(0)), 0)
}

func Test_DatasetPath(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "iris.csv")
	assert.Equal(t, DatasetPath(abs), abs)

	wd, err := os.Getwd()
	assert.NilError(t, err)
	defer os.Chdir(wd)
	assert.NilError(t, os.Chdir(dir))
	assert.NilError(t, os.WriteFile("local.csv", []byte("a\n1\n"), 0644))
	assert.Equal(t, DatasetPath("local.csv"), "local.csv")
	assert.Assert(t, DatasetPath("missing.csv") != "missing.csv")
}
