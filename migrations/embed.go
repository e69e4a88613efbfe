// Package migrations embeds the schema scripts for every SQL backend.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
