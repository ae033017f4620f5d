// Package static embeds the storefront stylesheet and client script.
package static

import (
	"embed"
	"io/fs"
)

//go:embed css js
var files embed.FS

// FS returns the asset tree rooted at the css and js directories.
func FS() fs.FS {
	return files
}
