package partition

import (
	"fmt"
	"golang.org/x/xerrors"
)

/*
ErrInvalidSplit is reported when split parameters would produce an empty
or degenerate partition
*/
var ErrInvalidSplit = xerrors.New("invalid split")

/*
MissingColumnError is reported when a dataset does not contain the requested column
*/
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("the dataset did not contain a column with the header %q", e.Column)
}

/*
UnknownLabelError is reported when a fitted encoder meets a label it has not seen
*/
type UnknownLabelError struct {
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown label %q", e.Label)
}
