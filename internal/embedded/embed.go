// Package embedded carries the historical source tables compiled into
// the binary.
package embedded

import (
	"embed"
)

// FS embeds the continuing resolution and appropriations gap tables.
//
//go:embed data/*.yaml
var FS embed.FS

// Dir is the directory inside FS holding the tables.
const Dir = "data"
