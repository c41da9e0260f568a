// Package static embeds the front-end assets served under /static.
package static

import "embed"

// Files holds the script and stylesheet used by index.html
//
//go:embed *.js *.css
var Files embed.FS
