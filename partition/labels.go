package partition

import (
	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/zorros/zorros"
)

// HasColumn reports whether the dataset has a column with the name
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

/*
ExtractLabels returns a copy of the dataset without the label column and a
single-column dataset of the labels. Both keep the input row order and the
input is not modified. A missing column is reported as *MissingColumnError.
When the label is the only column, features is a frame without columns.
*/
func ExtractLabels(dataset dataframe.DataFrame, labelColumn string) (features, labels dataframe.DataFrame, err error) {
	if dataset.Err != nil {
		err = zorros.Trace(dataset.Err)
		return
	}
	if !HasColumn(dataset, labelColumn) {
		err = &MissingColumnError{Column: labelColumn}
		return
	}
	if labels = dataset.Select(labelColumn).Copy(); labels.Err != nil {
		err = zorros.Wrapf(labels.Err, "failed to select labels: %v", labels.Err.Error())
		return
	}
	if dataset.Ncol() == 1 {
		features = dataframe.DataFrame{}
		return
	}
	if features = dataset.Drop(labelColumn).Copy(); features.Err != nil {
		err = zorros.Wrapf(features.Err, "failed to drop label column: %v", features.Err.Error())
	}
	return
}
