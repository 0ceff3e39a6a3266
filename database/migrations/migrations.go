// Package migrations embeds the versioned schema for each supported driver.
// Files follow the golang-migrate naming scheme: NNNNNN_name.{up,down}.sql.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

//go:embed oracle/*.sql
var Oracle embed.FS
