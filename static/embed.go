// Package staticfiles embeds the page assets so the binary ships complete.
// Set TICKLIST_DEV_STATIC=1 to serve from disk instead while iterating.
package staticfiles

import (
	"embed"
	"io/fs"
)

//go:embed css/* js/*
var embedded embed.FS

func EmbeddedFS() fs.FS {
	return embedded
}
