package htmldoc

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

// TemplatesFS exposes the built-in document templates so callers can reuse
// or extend them without importing the renderer internals.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The subtree is embedded at compile time; a failure here is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return sub
}
