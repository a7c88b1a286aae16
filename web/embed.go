// Package web holds the embedded single-page client served by the API
// process itself.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var content embed.FS

// StaticFS returns the client file system rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
