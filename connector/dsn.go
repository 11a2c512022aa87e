package connector

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DSNBuilder assembles URL-style connection strings for providers. It
// URL-escapes credentials and database names so values like "pa:ss@word"
// survive intact, and silently drops empty parameters so providers can pass
// optional config fields straight through.
type DSNBuilder struct {
	scheme   string
	username string
	password string
	host     string
	port     int
	database string
	params   map[string]string
}

// NewDSNBuilder starts a builder for the given URL scheme ("postgres", ...).
func NewDSNBuilder(scheme string) *DSNBuilder {
	return &DSNBuilder{
		scheme: scheme,
		params: make(map[string]string),
	}
}

// Auth sets the credentials. An empty username omits the auth section.
func (b *DSNBuilder) Auth(username, password string) *DSNBuilder {
	b.username = username
	b.password = password
	return b
}

// Host sets the target host and port.
func (b *DSNBuilder) Host(host string, port int) *DSNBuilder {
	b.host = host
	b.port = port
	return b
}

// Database sets the database name.
func (b *DSNBuilder) Database(name string) *DSNBuilder {
	b.database = name
	return b
}

// Param adds one query parameter; empty values are dropped.
func (b *DSNBuilder) Param(key, value string) *DSNBuilder {
	if value != "" {
		b.params[key] = value
	}
	return b
}

// Params adds a map of query parameters; empty values are dropped.
func (b *DSNBuilder) Params(params map[string]string) *DSNBuilder {
	for k, v := range params {
		if v != "" {
			b.params[k] = v
		}
	}
	return b
}

// WithPostgresDefaults applies conservative Postgres connection defaults.
// Explicit Param calls for the same keys take precedence when made after.
func (b *DSNBuilder) WithPostgresDefaults() *DSNBuilder {
	return b.Param("sslmode", "prefer").
		Param("connect_timeout", "10")
}

// Validate reports configuration a provider could not connect with.
func (b *DSNBuilder) Validate() error {
	if b.host == "" {
		return fmt.Errorf("host is required")
	}
	if b.port <= 0 || b.port > 65535 {
		return fmt.Errorf("invalid port: %d", b.port)
	}
	return nil
}

// Build renders the DSN. Parameter order is unspecified; drivers parse the
// query string as a map.
func (b *DSNBuilder) Build() string {
	var dsn strings.Builder

	dsn.WriteString(b.scheme)
	dsn.WriteString("://")

	if b.username != "" {
		dsn.WriteString(url.QueryEscape(b.username))
		if b.password != "" {
			dsn.WriteString(":")
			dsn.WriteString(url.QueryEscape(b.password))
		}
		dsn.WriteString("@")
	}

	dsn.WriteString(b.host)
	if b.port > 0 {
		dsn.WriteString(":")
		dsn.WriteString(strconv.Itoa(b.port))
	}

	if b.database != "" {
		dsn.WriteString("/")
		dsn.WriteString(url.PathEscape(b.database))
	}

	if len(b.params) > 0 {
		dsn.WriteString("?")
		first := true
		for key, value := range b.params {
			if !first {
				dsn.WriteString("&")
			}
			dsn.WriteString(url.QueryEscape(key))
			dsn.WriteString("=")
			dsn.WriteString(url.QueryEscape(value))
			first = false
		}
	}

	return dsn.String()
}
