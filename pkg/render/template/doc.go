// Package template defines the engine seam template-backed renderers use and
// hosts the pongo2 adapter under gotemplate.
package template
