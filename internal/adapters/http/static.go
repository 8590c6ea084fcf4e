package http

import "embed"

// staticAssets holds the landing page served under /static/.
//
//go:embed static
var staticAssets embed.FS
