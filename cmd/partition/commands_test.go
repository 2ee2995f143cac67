package main

import (
	"bytes"
	"database/sql"
	"fmt"
	"go-ml.dev/pkg/partition/partition"
	"go-ml.dev/pkg/partition/tables"
	"gotest.tools/assert"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func dataset(t *testing.T, n int) string {
	var b strings.Builder
	b.WriteString("id,x,label\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d,%d.5,%s\n", i, i, []string{"cat", "dog"}[i%2])
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	assert.NilError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

func run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func Test_Folds(t *testing.T) {
	input := dataset(t, 10)
	out := t.TempDir()
	_, err := run("folds", "--input", input, "--k", "3", "--out", out)
	assert.NilError(t, err)

	df, err := tables.Open(input)
	assert.NilError(t, err)
	want, err := partition.SplitData(df, 3)
	assert.NilError(t, err)
	for i := range want {
		q, err := tables.Open(filepath.Join(out, fmt.Sprintf("fold_%02d.csv", i)))
		assert.NilError(t, err)
		assert.Equal(t, q.Nrow(), 3)
		assert.DeepEqual(t, q.Col("id").Records(), want[i].Col("id").Records())
	}
}

func Test_HoldoutSeedFromEnv(t *testing.T) {
	input := dataset(t, 10)
	out := t.TempDir()
	t.Setenv("PARTITION_SEED", "7")
	_, err := run("holdout", "--input", input, "--test", "0.4", "--out", out, "--format", "csv.xz")
	assert.NilError(t, err)

	df, err := tables.Open(input)
	assert.NilError(t, err)
	_, want, err := partition.Partitioner{Seed: 7}.TrainTest(df, 0.4)
	assert.NilError(t, err)
	test, err := tables.Open(filepath.Join(out, "test.csv.xz"))
	assert.NilError(t, err)
	assert.DeepEqual(t, test.Col("id").Records(), want.Col("id").Records())
	train, err := tables.Open(filepath.Join(out, "train.csv.xz"))
	assert.NilError(t, err)
	assert.Equal(t, train.Nrow(), 6)
}

func Test_Labels(t *testing.T) {
	input := dataset(t, 4)
	out := t.TempDir()
	_, err := run("labels", "--input", input, "--out", out)
	assert.NilError(t, err)
	features, err := tables.Open(filepath.Join(out, "features.csv"))
	assert.NilError(t, err)
	assert.DeepEqual(t, features.Names(), []string{"id", "x"})
	labels, err := tables.Open(filepath.Join(out, "labels.csv"))
	assert.NilError(t, err)
	assert.DeepEqual(t, labels.Col("label").Records(), []string{"cat", "dog", "cat", "dog"})

	_, err = run("labels", "--input", input, "--out", out, "--label", "class")
	assert.ErrorContains(t, err, "class")
}

func Test_EncodeFromSqlite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pets.db")
	db, err := sql.Open("sqlite3", path)
	assert.NilError(t, err)
	_, err = db.Exec(`create table pets (weight real, kind text); insert into pets values (4.2, 'dog'), (3.1, 'cat'), (5.0, 'dog')`)
	assert.NilError(t, err)
	assert.NilError(t, db.Close())

	output, err := run("encode", "--sqlite", path, "--query", "select * from pets", "--label", "kind", "--out", dir)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(output, "0\tcat\n1\tdog\n"), output)
	df, err := tables.Open(filepath.Join(dir, "encoded.csv"))
	assert.NilError(t, err)
	assert.DeepEqual(t, df.Col("kind").Records(), []string{"1", "0", "1"})
}

func Test_MissingInput(t *testing.T) {
	_, err := run("folds")
	assert.ErrorContains(t, err, "--input")
	_, err = run("folds", "--sqlite", "x.db")
	assert.ErrorContains(t, err, "--query")
}

func Test_UnsupportedFormat(t *testing.T) {
	input := dataset(t, 4)
	out := t.TempDir()
	_, err := run("folds", "--input", input, "--k", "2", "--out", out, "--format", "parquet")
	assert.ErrorContains(t, err, "parquet")
	files, err := os.ReadDir(out)
	assert.NilError(t, err)
	assert.Equal(t, len(files), 0)
}
