// Package sqlt wires a registered connection provider to an execution
// template. Import a provider package for its side-effect registration:
//
//	import (
//		"github.com/Konsultn-Engineering/sqlt"
//		_ "github.com/Konsultn-Engineering/sqlt/providers/postgres"
//	)
//
//	tpl, conn, err := sqlt.Connect(ctx, "postgres", connector.Config{...})
package sqlt

import (
	"context"

	"github.com/Konsultn-Engineering/sqlt/connector"
	"github.com/Konsultn-Engineering/sqlt/template"
)

// Config is re-exported so basic usage needs only this package and a provider.
type Config = connector.Config

// Connect resolves the named provider, establishes a connection, and returns
// a Template over it. The returned Connection owns the pool; close it when
// done with the template.
func Connect(ctx context.Context, provider string, cfg Config, opts ...template.Option) (*template.Template, connector.Connection, error) {
	c, err := connector.New(provider, cfg)
	if err != nil {
		return nil, nil, err
	}
	conn, err := c.Connect(ctx)
	if err != nil {
		return nil, nil, err
	}
	return template.New(conn.Database(), opts...), conn, nil
}
