// Package migrations embeds the SQL migration files so server bootstrap
// and integration tests can run goose without a filesystem path.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
