package connector

// ConnectionStats is a point-in-time snapshot of a provider's pool, filled
// from whatever the underlying driver reports (pgxpool.Stat, sql.DBStats).
type ConnectionStats struct {
	OpenConnections int
	InUse           int
	Idle            int
}
