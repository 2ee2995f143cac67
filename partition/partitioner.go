/*
Package partition splits gota dataframes for model experiments: k folds for
cross-validation, a held-out test set, feature/label separation and label
encoding.

Row order of a dataframe is its index, so every returned frame is densely
indexed from zero.
*/
package partition

import (
	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/zorros/zorros"
	"math/rand/v2"
)

// DefaultSeed is the shuffling seed used by package level functions
const DefaultSeed uint64 = 31

/*
Partitioner shuffles and splits datasets with a fixed random seed.
Equal seeds and inputs give row-for-row equal results.
*/
type Partitioner struct {
	Seed uint64
}

// Default is the partitioner seeded with DefaultSeed
var Default = Partitioner{Seed: DefaultSeed}

func (p Partitioner) random() *rand.Rand {
	return rand.New(rand.NewPCG(p.Seed, p.Seed))
}

func (p Partitioner) perm(n int) []int {
	return p.random().Perm(n)
}

/*
Shuffle returns all rows of the dataset in a seeded random order
*/
func (p Partitioner) Shuffle(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, zorros.Trace(df.Err)
	}
	if df.Nrow() == 0 {
		return df.Copy(), nil
	}
	q := df.Subset(p.perm(df.Nrow()))
	if q.Err != nil {
		return q, zorros.Wrapf(q.Err, "failed to shuffle dataset: %v", q.Err.Error())
	}
	return q, nil
}
