package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatePath is the template the renderer executes. Replacement bundles
// supplied through WithTemplatesFS must provide it.
const TemplatePath = "templates/contact.tmpl"

// TemplatesFS exposes the embedded template bundle for consumers that want to
// extend or override the built-in contact table.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
