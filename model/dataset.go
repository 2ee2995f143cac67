package model

import (
	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/partition/partition"
	"path"
)

// DefaultKfold is the count of cross-validation folds used when Dataset.Kfold is zero
const DefaultKfold = 5

/*
Dataset is a source of data to feed models together with its partitioning options
*/
type Dataset struct {
	Source   dataframe.DataFrame // full dataset
	Label    string              // name of the column containing label to train
	Test     string              // optional name of boolean column selecting test data
	Features []string            // patterns of feature names, all other columns if empty
	Seed     uint64              // shuffling seed, partition.DefaultSeed if zero
	Kfold    int                 // count of folds, DefaultKfold if zero
}

/*
Round is a pair of training and test subsets
*/
type Round struct {
	Train, Test dataframe.DataFrame
}

func (ds Dataset) partitioner() partition.Partitioner {
	if ds.Seed == 0 {
		return partition.Default
	}
	return partition.Partitioner{Seed: ds.Seed}
}

/*
FeatureNames returns names of the frame columns matching Features patterns.
Label and Test columns are never features.
*/
func (ds Dataset) FeatureNames(df dataframe.DataFrame) []string {
	r := []string{}
	for _, n := range df.Names() {
		if n == ds.Label || n == ds.Test {
			continue
		}
		if len(ds.Features) == 0 {
			r = append(r, n)
			continue
		}
		for _, p := range ds.Features {
			if ok, _ := path.Match(p, n); ok {
				r = append(r, n)
				break
			}
		}
	}
	return r
}
