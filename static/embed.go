// Package static embeds the page stylesheet.
package static

import "embed"

//go:embed main.css
var FS embed.FS
