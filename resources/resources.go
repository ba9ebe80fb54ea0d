// Package resources embeds the HTML views and static assets served by the
// web front end.
package resources

import (
	"embed"
	"io/fs"
)

//go:embed views/*.html static/*
var files embed.FS

// Views returns the template filesystem. Template names are relative to it,
// e.g. "views/index".
func Views() fs.FS { return files }

// Static returns the static asset directory rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err) // static/ is embedded at build time
	}
	return sub
}
