package dialect

type SQLite struct{}

func NewSQLiteDialect() Dialect {
	return &SQLite{}
}

func (s SQLite) Name() string {
	return "sqlite"
}

func (s SQLite) QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

// Placeholder is position-independent for SQLite; every placeholder is "?".
func (s SQLite) Placeholder(n int) string {
	return "?"
}
