//go:build tools

package main

import (
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
)
