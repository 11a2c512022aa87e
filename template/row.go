package template

// Row is the view of the cursor a RowMapper receives: the current row only.
// A mapper can read it; it cannot advance or close the cursor.
type Row interface {
	Scan(dest ...any) error
	Columns() ([]string, error)
}

// RowMapper converts the cursor's current row into one value of T. Mappers
// must not assume anything about remaining rows; the template invokes them
// zero, one, or many times and owns the cursor lifecycle throughout.
type RowMapper[T any] func(row Row) (T, error)
