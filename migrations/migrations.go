// Package migrations embeds the schema applied on startup.
package migrations

import "embed"

//go:embed *.up.sql
var FS embed.FS
