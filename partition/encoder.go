package partition

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go-ml.dev/pkg/zorros/zorros"
	"math"
	"sort"
	"strconv"
)

/*
LabelEncoder maps categorical labels to integer codes 0..m-1.

Classes are ordered when fitted: numeric columns by value (NaN last),
everything else lexicographically. The fitted mapping is kept so codes can be
decoded again with InverseTransform.
*/
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

// Fit learns the classes of string labels
func (e *LabelEncoder) Fit(labels []string) *LabelEncoder {
	e.learn(unique(labels), func(a, b string) bool { return a < b })
	return e
}

func numeric(s series.Series) bool {
	t := s.Type()
	return t == series.Int || t == series.Float
}

// keys returns labels of the column, numbers are written with full precision
func keys(s series.Series) []string {
	if !numeric(s) {
		return s.Records()
	}
	v := s.Float()
	r := make([]string, len(v))
	for i, x := range v {
		r[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return r
}

/*
FitSeries learns the classes of a dataframe column. Int and Float columns are
ordered by value rather than by their text and every distinct value is a class.
*/
func (e *LabelEncoder) FitSeries(s series.Series) *LabelEncoder {
	labels := keys(s)
	if !numeric(s) {
		return e.Fit(labels)
	}
	value := map[string]float64{}
	for i, v := range s.Float() {
		value[labels[i]] = v
	}
	e.learn(unique(labels), func(a, b string) bool {
		x, y := value[a], value[b]
		if math.IsNaN(x) || math.IsNaN(y) {
			return !math.IsNaN(x) && math.IsNaN(y)
		}
		return x < y
	})
	return e
}

func (e *LabelEncoder) learn(classes []string, less func(a, b string) bool) {
	sort.SliceStable(classes, func(i, j int) bool { return less(classes[i], classes[j]) })
	e.classes = classes
	e.index = make(map[string]int, len(classes))
	for i, c := range classes {
		e.index[c] = i
	}
}

func unique(labels []string) []string {
	seen := map[string]bool{}
	r := []string{}
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			r = append(r, l)
		}
	}
	return r
}

// Classes returns fitted classes in code order
func (e *LabelEncoder) Classes() []string {
	return append([]string(nil), e.classes...)
}

// Mapping returns the fitted label to code mapping
func (e *LabelEncoder) Mapping() map[string]int {
	m := make(map[string]int, len(e.index))
	for k, v := range e.index {
		m[k] = v
	}
	return m
}

// Transform maps labels to their codes
func (e *LabelEncoder) Transform(labels []string) ([]int, error) {
	codes := make([]int, len(labels))
	for i, l := range labels {
		c, ok := e.index[l]
		if !ok {
			return nil, &UnknownLabelError{Label: l}
		}
		codes[i] = c
	}
	return codes, nil
}

// FitTransform fits the encoder and maps the same labels
func (e *LabelEncoder) FitTransform(labels []string) ([]int, error) {
	return e.Fit(labels).Transform(labels)
}

// InverseTransform maps codes back to labels
func (e *LabelEncoder) InverseTransform(codes []int) ([]string, error) {
	labels := make([]string, len(codes))
	for i, c := range codes {
		if c < 0 || c >= len(e.classes) {
			return nil, zorros.Errorf("unknown label code %d", c)
		}
		labels[i] = e.classes[c]
	}
	return labels, nil
}

/*
EncodeInPlace fits the encoder on the column and replaces the column values
with integer codes. The dataset pointed by df is modified.
*/
func (e *LabelEncoder) EncodeInPlace(df *dataframe.DataFrame, labelColumn string) error {
	if df.Err != nil {
		return zorros.Trace(df.Err)
	}
	if !HasColumn(*df, labelColumn) {
		return &MissingColumnError{Column: labelColumn}
	}
	col := df.Col(labelColumn)
	codes, err := e.FitSeries(col).Transform(keys(col))
	if err != nil {
		return err
	}
	q := df.Mutate(series.New(codes, series.Int, labelColumn))
	if q.Err != nil {
		return zorros.Wrapf(q.Err, "failed to replace column %v: %v", labelColumn, q.Err.Error())
	}
	*df = q
	return nil
}

/*
EncodeLabelsInPlace replaces string labels in the column with integer codes.
It is the only operation of the package modifying its argument.
*/
func EncodeLabelsInPlace(dataset *dataframe.DataFrame, labelColumn string) error {
	return (&LabelEncoder{}).EncodeInPlace(dataset, labelColumn)
}
