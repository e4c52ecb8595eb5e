package docs

import "embed"

// FS contains the long-form Markdown reference bundled with the tempio binary.
//
//go:embed reference
var FS embed.FS
