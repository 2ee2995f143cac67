package model

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go-ml.dev/pkg/partition/partition"
	"go-ml.dev/pkg/zorros/zorros"
	"gonum.org/v1/gonum/mat"
)

/*
Matrices converts a subset of the dataset to a feature matrix and a label vector.
Features and label must be numeric, string labels have to be encoded first
with partition.EncodeLabelsInPlace.
*/
func (ds Dataset) Matrices(df dataframe.DataFrame) (*mat.Dense, []float64, error) {
	features, labels, err := partition.ExtractLabels(df, ds.Label)
	if err != nil {
		return nil, nil, err
	}
	names := ds.FeatureNames(features)
	if len(names) == 0 || features.Nrow() == 0 {
		return nil, nil, zorros.Errorf("dataset has no features or rows to train")
	}
	y := labels.Col(ds.Label)
	if y.Type() == series.String {
		return nil, nil, zorros.Errorf("label `%v` is not numeric, encode it first", ds.Label)
	}
	x := mat.NewDense(features.Nrow(), len(names), nil)
	for j, n := range names {
		s := features.Col(n)
		if s.Type() == series.String {
			return nil, nil, zorros.Errorf("feature `%v` is not numeric", n)
		}
		for i, v := range s.Float() {
			x.Set(i, j, v)
		}
	}
	return x, y.Float(), nil
}
