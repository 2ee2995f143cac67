package partition

import (
	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/partition/fu"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
	"math"
)

/*
TrainTest shuffles the dataset and samples round(testPercentage*n) of its rows
as the test set. The training set holds all other rows in shuffled order.
*/
func (p Partitioner) TrainTest(df dataframe.DataFrame, testPercentage float64) (train, test dataframe.DataFrame, err error) {
	if df.Err != nil {
		err = zorros.Trace(df.Err)
		return
	}
	if !(testPercentage > 0 && testPercentage < 1) {
		err = xerrors.Errorf("test percentage must be in (0,1), got %v: %w", testPercentage, ErrInvalidSplit)
		return
	}
	n := df.Nrow()
	count := int(math.Round(testPercentage * float64(n)))
	if count == 0 || count == n {
		err = xerrors.Errorf("test percentage %v of %d rows leaves an empty set: %w", testPercentage, n, ErrInvalidSplit)
		return
	}
	shuffled, err := p.Shuffle(df)
	if err != nil {
		return
	}
	sample := p.perm(n)[:count]
	taken := make([]bool, n)
	for _, i := range sample {
		taken[i] = true
	}
	rest := make([]int, 0, n-count)
	for _, i := range fu.Seqi(n) {
		if !taken[i] {
			rest = append(rest, i)
		}
	}
	if test = shuffled.Subset(sample); test.Err != nil {
		err = zorros.Wrapf(test.Err, "failed to select test rows: %v", test.Err.Error())
		return
	}
	if train = shuffled.Subset(rest); train.Err != nil {
		err = zorros.Wrapf(train.Err, "failed to select training rows: %v", train.Err.Error())
	}
	return
}

/*
CreateTrainingAndTestSets splits the dataset into training and test sets using DefaultSeed
*/
func CreateTrainingAndTestSets(dataset dataframe.DataFrame, testPercentage float64) (trainingData, testData dataframe.DataFrame, err error) {
	return Default.TrainTest(dataset, testPercentage)
}
