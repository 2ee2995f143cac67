package partition

import (
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/zorros/zorros"
	"go-ml.dev/pkg/zorros/zlog"
	"golang.org/x/xerrors"
)

/*
Folds splits the shuffled dataset into k contiguous, disjoint folds of
n/k rows each. The n%k rows left over are not part of any fold.
*/
func (p Partitioner) Folds(df dataframe.DataFrame, k int) ([]dataframe.DataFrame, error) {
	if df.Err != nil {
		return nil, zorros.Trace(df.Err)
	}
	n := df.Nrow()
	if k <= 0 {
		return nil, xerrors.Errorf("number of folds must be positive, got %d: %w", k, ErrInvalidSplit)
	}
	if k > n {
		return nil, xerrors.Errorf("%d folds requested for %d rows: %w", k, n, ErrInvalidSplit)
	}
	shuffled, err := p.Shuffle(df)
	if err != nil {
		return nil, err
	}
	size := n / k
	if r := n % k; r != 0 {
		zlog.Warning(fmt.Sprintf("%d of %d rows do not fit into %d folds and are dropped", r, n, k))
	}
	folds := make([]dataframe.DataFrame, k)
	for i := range folds {
		idx := make([]int, size)
		for j := range idx {
			idx[j] = i*size + j
		}
		folds[i] = shuffled.Subset(idx)
		if folds[i].Err != nil {
			return nil, zorros.Wrapf(folds[i].Err, "failed to create fold %d: %v", i, folds[i].Err.Error())
		}
	}
	return folds, nil
}

/*
SplitData splits the dataset into numberOfSplits folds using DefaultSeed
*/
func SplitData(fullData dataframe.DataFrame, numberOfSplits int) ([]dataframe.DataFrame, error) {
	return Default.Folds(fullData, numberOfSplits)
}
