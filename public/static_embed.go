// Package public embeds the admin stylesheet and htmx glue served under
// /static/.
package public

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var static embed.FS

// StaticFS exposes the embedded assets rooted at the static directory.
func StaticFS() (fs.FS, error) {
	return fs.Sub(static, "static")
}

