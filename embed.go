package kapehan

import "embed"

// MigrationFiles carries the SQL schema so the binary can migrate the
// database it connects to.
//
//go:embed migrations/*.sql
var MigrationFiles embed.FS
