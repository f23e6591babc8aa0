// Package content embeds the bundled Lua content.
package content

import "embed"

// Classic holds the classic catalog under the "classic" directory.
//
//go:embed classic/*.lua
var Classic embed.FS

// ClassicDir is the directory inside Classic holding the .lua files.
const ClassicDir = "classic"
