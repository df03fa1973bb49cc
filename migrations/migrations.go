// Package migrations drži goose SQL migracije ugrađene u binarni fajl.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
