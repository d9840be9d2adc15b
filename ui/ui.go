// Package ui embeds the templates and static assets served by the app.
package ui

import "embed"

//go:embed html static
var Files embed.FS
