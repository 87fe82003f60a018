package db

import "fmt"

// ParamNotFoundError reports a named parameter absent from the statement.
type ParamNotFoundError struct {
	Name string
}

func (e *ParamNotFoundError) Error() string {
	return fmt.Sprintf("db: no such parameter: %s", e.Name)
}

// ColumnNotFoundError reports a result-column name absent from the
// statement.
type ColumnNotFoundError struct {
	Name string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("db: no such column: %s", e.Name)
}

// ColumnRangeError reports a column index outside [0, Count).
type ColumnRangeError struct {
	Index int
	Count int
}

func (e *ColumnRangeError) Error() string {
	return fmt.Sprintf("db: column index %d out of range [0, %d)", e.Index, e.Count)
}
