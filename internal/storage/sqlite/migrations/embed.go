package migrations

import "embed"

// FS contains embedded SQLite migrations for sweep storage.
//
//go:embed *.sql
var FS embed.FS
