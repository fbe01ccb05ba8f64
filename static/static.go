// Package static embeds the API documentation served under /static and /docs.
package static

import "embed"

// Files holds openapi.json and the openapi.html UI that loads it.
//
//go:embed openapi.html openapi.json
var Files embed.FS
