// Package frontend embeds the built chat UI served by the HTTP server.
package frontend

import "embed"

//go:embed all:dist
var StaticFiles embed.FS
