package dialect

import "strconv"

type Postgres struct{}

func NewPostgresDialect() Dialect {
	return &Postgres{}
}

func (p Postgres) Name() string {
	return "postgres"
}

func (p Postgres) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

// Placeholder returns the 1-based positional placeholder, e.g. $1, $2.
func (p Postgres) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
