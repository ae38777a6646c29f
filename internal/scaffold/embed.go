package scaffold

import "embed"

// templateFS holds the frontend project boilerplate. Files ending in .tmpl
// are rendered with text/template; .vue files use moustache interpolation
// that conflicts with Go's template syntax and are copied verbatim.
//
//go:embed templates
var templateFS embed.FS
