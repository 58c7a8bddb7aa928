// Package migrations embeds the SQL schema for the enrollment journal.
package migrations

import "embed"

// FS holds the *.sql migration files.
//
//go:embed *.sql
var FS embed.FS
