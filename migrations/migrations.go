// Package migrations embeds the versioned schema so the binary and the e2e
// suite migrate from the same files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
