// Package fanvote holds assets shared by the binaries of the fan voting
// service.
package fanvote

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
