package model

import (
	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/partition/fu"
	"go-ml.dev/pkg/partition/partition"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
)

/*
CrossValidation splits the source into Kfold folds and returns one round per
fold. Round i is tested on fold i and trained on all the other folds.
*/
func (ds Dataset) CrossValidation() ([]Round, error) {
	k := fu.Fnzi(ds.Kfold, DefaultKfold)
	if k < 2 {
		return nil, xerrors.Errorf("cross-validation needs at least 2 folds, got %d: %w", k, partition.ErrInvalidSplit)
	}
	folds, err := ds.partitioner().Folds(ds.Source, k)
	if err != nil {
		return nil, err
	}
	rounds := make([]Round, k)
	for i := range folds {
		var train dataframe.DataFrame
		first := true
		for j, f := range folds {
			if j == i {
				continue
			}
			if first {
				train, first = f.Copy(), false
			} else {
				train = train.RBind(f)
			}
		}
		if train.Err != nil {
			return nil, zorros.Wrapf(train.Err, "failed to join folds for round %d: %v", i, train.Err.Error())
		}
		rounds[i] = Round{Train: train, Test: folds[i]}
	}
	return rounds, nil
}

/*
LuckyCrossValidation is CrossValidation throwing errors as a panic
*/
func (ds Dataset) LuckyCrossValidation() []Round {
	r, err := ds.CrossValidation()
	if err != nil {
		panic(zorros.Panic(err))
	}
	return r
}

/*
Holdout splits the source into training and test subsets. When Test names a
boolean column the rows where it is true are the test subset, otherwise
testPercentage of shuffled rows is sampled.
*/
func (ds Dataset) Holdout(testPercentage float64) (Round, error) {
	if ds.Test == "" {
		train, test, err := ds.partitioner().TrainTest(ds.Source, testPercentage)
		return Round{Train: train, Test: test}, err
	}
	if ds.Source.Err != nil {
		return Round{}, zorros.Trace(ds.Source.Err)
	}
	if !partition.HasColumn(ds.Source, ds.Test) {
		return Round{}, &partition.MissingColumnError{Column: ds.Test}
	}
	var train, test []int
	for i, v := range ds.Source.Col(ds.Test).Records() {
		if v == "true" {
			test = append(test, i)
		} else {
			train = append(train, i)
		}
	}
	if len(train) == 0 || len(test) == 0 {
		return Round{}, xerrors.Errorf("column %v leaves an empty set: %w", ds.Test, partition.ErrInvalidSplit)
	}
	return Round{Train: ds.Source.Subset(train), Test: ds.Source.Subset(test)}, nil
}
