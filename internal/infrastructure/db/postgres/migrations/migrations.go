// Package migrations embeds the schema migration files for goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
