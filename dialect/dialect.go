package dialect

// Dialect captures the placeholder and quoting conventions of a database
// engine. The execution template never rewrites SQL text; dialects exist so
// callers assembling statements can stay engine-agnostic.
type Dialect interface {
	Name() string
	QuoteIdentifier(name string) string
	Placeholder(n int) string
}
