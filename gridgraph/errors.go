package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNoStart indicates the grid has no 'S' cell.
	ErrNoStart = errors.New("gridgraph: grid has no start cell")
	// ErrNoEnd indicates the grid has no 'E' cell.
	ErrNoEnd = errors.New("gridgraph: grid has no end cell")
)
