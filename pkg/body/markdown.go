package body

import (
	"io"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/goliatone/go-contact/pkg/model"
	"github.com/goliatone/go-contact/pkg/render"
)

// Markdown converts the body from Markdown to HTML and sanitises the result
// with the same policy as Sanitized. Raw HTML inside the Markdown is subject
// to the policy as well.
func Markdown(options ...SanitizedOption) BodyRenderer {
	cfg := newSanitizeConfig(options)
	return Func(func(_ render.ElementContext, contact model.Contact, out io.Writer) error {
		raw, err := model.ReadBody(contact.Body)
		if err != nil {
			return err
		}
		if raw == "" {
			return nil
		}
		html := markdownToHTML([]byte(raw))
		_, err = out.Write(cfg.policy.SanitizeBytes(html))
		return err
	})
}

// A parser is single-use, so one is built per conversion.
func markdownToHTML(src []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return markdown.ToHTML(src, p, renderer)
}
