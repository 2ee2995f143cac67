/*
Package tables loads and stores gota dataframes for partitioning
*/
package tables

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/partition/fu"
	"go-ml.dev/pkg/zorros/zorros"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func compressed(path string) bool {
	return strings.HasSuffix(path, ".xz")
}

/*
ReadCSV reads a CSV stream with a header line into a dataframe, detecting column types
*/
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if df.Err != nil {
		return df, zorros.Wrapf(df.Err, "failed to read csv: %v", df.Err.Error())
	}
	return df, nil
}

/*
Open reads a CSV file, xz compressed when the name ends with .xz.
Relative names are resolved with fu.DatasetPath.
*/
func Open(path string) (dataframe.DataFrame, error) {
	path = fu.DatasetPath(path)
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{Err: err}, zorros.Trace(err)
	}
	defer f.Close()
	var r io.Reader = f
	if compressed(path) {
		if r, err = xz.NewReader(f); err != nil {
			return dataframe.DataFrame{Err: err}, zorros.Wrapf(err, "failed to open xz stream %v: %v", path, err.Error())
		}
	}
	return ReadCSV(r)
}

/*
WriteCSV writes the dataframe with a header line, xz compressed when the name ends with .xz.
Missing directories are created.
*/
func WriteCSV(df dataframe.DataFrame, path string) (err error) {
	if df.Err != nil {
		return zorros.Trace(df.Err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zorros.Trace(err)
	}
	f, err := os.Create(path)
	if err != nil {
		return zorros.Trace(err)
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = zorros.Trace(e)
		}
	}()
	if !compressed(path) {
		if err = df.WriteCSV(f); err != nil {
			err = zorros.Wrapf(err, "failed to write %v: %v", path, err.Error())
		}
		return
	}
	w, err := xz.NewWriter(f)
	if err != nil {
		return zorros.Trace(err)
	}
	if err = df.WriteCSV(w); err != nil {
		w.Close()
		return zorros.Wrapf(err, "failed to write %v: %v", path, err.Error())
	}
	if err = w.Close(); err != nil {
		err = zorros.Trace(err)
	}
	return
}
