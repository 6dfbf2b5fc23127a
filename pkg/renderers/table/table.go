// Package table writes a Contact as an HTML table fragment for embedding in
// a larger page. Output is streamed straight to the caller's writer in a
// single pass; a failed write aborts rendering and the caller discards the
// partial fragment.
package table

import (
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-contact/pkg/body"
	"github.com/goliatone/go-contact/pkg/encoding"
	"github.com/goliatone/go-contact/pkg/model"
	"github.com/goliatone/go-contact/pkg/pageindex"
	"github.com/goliatone/go-contact/pkg/render"
)

// Class names emitted on the table and its fixed cells.
const (
	TableClass  = "thinTable contactTable"
	HeaderClass = "contactTableHeader"
	BodyClass   = "contactBody"
	EmailClass  = "contact_email_address"
	WebClass    = "contact_web_page"
)

// Option configures WriteContactTable and Renderer.
type Option func(*config)

type config struct {
	encoder encoding.TextEncoder
	body    body.BodyRenderer
	logger  *zap.Logger
}

// WithEncoder replaces the XHTML encoder.
func WithEncoder(enc encoding.TextEncoder) Option {
	return func(cfg *config) {
		if enc != nil {
			cfg.encoder = enc
		}
	}
}

// WithBodyRenderer replaces the trusted body renderer.
func WithBodyRenderer(renderer body.BodyRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.body = renderer
		}
	}
}

// WithLogger enables debug tracing of the sections emitted per contact.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func newConfig(options []Option) config {
	cfg := config{
		encoder: encoding.XHTML,
		body:    body.Trusted,
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WriteContactTable writes contact to out as a `<table>` fragment. The table
// id comes from indexer (which may be nil), style is coerced with
// encoding.Coerce, and ctx is handed to the body renderer untouched. The
// first write error from out is returned as-is.
func WriteContactTable(indexer pageindex.PageIndexer, out io.Writer, ctx render.ElementContext, style any, contact model.Contact, options ...Option) error {
	cfg := newConfig(options)
	w := &tableWriter{out: out, enc: cfg.encoder}

	w.raw(`<table id="`)
	if w.err == nil {
		w.err = pageindex.AppendIDInPage(indexer, contact.Page, contact.ID, encoding.NewWriter(cfg.encoder, encoding.Attribute, out))
	}
	w.raw(`" class="` + TableClass + `"`)
	if value, ok := encoding.Coerce(style); ok {
		w.raw(` style="`)
		w.attr(value)
		w.raw(`"`)
	}
	w.raw(">\n")

	// The header is hidden only for address-only contacts, where the
	// surrounding page supplies its own heading.
	header := !contact.AddressOnly()
	if header {
		w.raw(`<thead><tr><th class="` + HeaderClass + `" colspan="3"><div>`)
		if w.err == nil {
			w.err = contact.AppendLabel(encoding.NewWriter(cfg.encoder, encoding.Text, out))
		}
		w.raw("</div></th></tr></thead>\n")
	}

	w.raw("<tbody>\n")
	w.row("Title:", contact.Title)
	w.row("First:", contact.First)
	w.row("Middle:", contact.Middle)
	w.row("Nick:", contact.Nick)
	w.row("Last:", contact.Last)
	w.row("Maiden:", contact.Maiden)
	w.row("Suffix:", contact.Suffix)
	w.row("Company:", contact.Company)
	w.row("Department:", contact.Department)
	w.row("Job Title:", contact.JobTitle)

	for _, email := range contact.Emails {
		address := email.String()
		w.raw(`<tr><th>Email:</th><td colspan="2"><div class="` + EmailClass + `"><a href="mailto:`)
		w.attr(address)
		w.raw(`">`)
		w.text(address)
		w.raw("</a></div></td></tr>\n")
	}

	for _, phone := range contact.PhoneNumbers {
		w.labelCell(phone.Type.Label(), phone.Comment)
		w.raw(`<div class="`)
		w.attr(phone.Type.CSSClass())
		w.raw(`"><a href="tel:`)
		w.attr(TelHref(phone.Number))
		w.raw(`">`)
		w.text(phone.Number)
		w.raw("</a></div></td>")
		w.commentCell(phone.Comment)
	}

	for _, im := range contact.IMs {
		w.labelCell(im.Type.Label(), im.Comment)
		w.raw(`<div class="`)
		w.attr(im.Type.CSSClass())
		w.raw(`">`)
		w.text(im.Handle)
		w.raw("</div></td>")
		w.commentCell(im.Comment)
	}

	for _, page := range contact.WebPages {
		w.raw(`<tr><th>Web Page:</th><td colspan="2"><div class="` + WebClass + `"><a href="`)
		w.attr(page)
		w.raw(`">`)
		w.text(page)
		w.raw("</a></div></td></tr>\n")
	}

	for _, address := range contact.Addresses {
		w.raw(`<tr><th class="`)
		w.attr(address.Type.CSSClass())
		w.raw(`" colspan="3"><div>`)
		w.text(address.Type.Label())
		w.raw("</div></th></tr>\n")
		w.row("Address 1:", address.Address1)
		w.row("Address 2:", address.Address2)
		w.row("City:", address.City)
		w.row("State/Prov:", address.StateProv)
		w.row("ZIP/Postal:", address.ZIPPostal)
		w.row("Country:", address.Country)
		w.row("Comment:", address.Comment)
	}

	bodyLen := contact.BodyLen()
	if bodyLen > 0 {
		w.raw(`<tr><td class="` + BodyClass + `" colspan="3">`)
		if w.err == nil {
			w.err = cfg.body.RenderBody(ctx, contact, out)
		}
		w.raw("</td></tr>\n")
	}
	w.raw("</tbody>\n</table>")

	if w.err != nil {
		return w.err
	}
	cfg.logger.Debug("contact table written",
		zap.String("id", contact.ID),
		zap.String("page", contact.Page.String()),
		zap.Bool("header", header),
		zap.Int("emails", len(contact.Emails)),
		zap.Int("phones", len(contact.PhoneNumbers)),
		zap.Int("ims", len(contact.IMs)),
		zap.Int("webPages", len(contact.WebPages)),
		zap.Int("addresses", len(contact.Addresses)),
		zap.Int("bodyLen", bodyLen),
	)
	return nil
}

// TelHref returns the tel: target for a display number. Spaces become
// hyphens; everything else is kept.
func TelHref(number string) string {
	return strings.ReplaceAll(number, " ", "-")
}

// tableWriter records the first write error and turns every later write into
// a no-op, so the emission sequence reads linearly.
type tableWriter struct {
	out io.Writer
	enc encoding.TextEncoder
	err error
}

func (w *tableWriter) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s)
}

func (w *tableWriter) text(s string) {
	w.raw(w.enc.EscapeText(s))
}

func (w *tableWriter) attr(s string) {
	w.raw(w.enc.EscapeAttribute(s))
}

func (w *tableWriter) row(label string, value *string) {
	if value == nil {
		return
	}
	w.raw("<tr><th>")
	w.text(label)
	w.raw(`</th><td colspan="2">`)
	w.text(*value)
	w.raw("</td></tr>\n")
}

// labelCell opens a phone/IM row; the value cell spans both remaining
// columns unless a comment takes the third.
func (w *tableWriter) labelCell(label string, comment *string) {
	w.raw("<tr><th>")
	w.text(label)
	w.raw(":</th><td")
	if comment == nil {
		w.raw(` colspan="2"`)
	}
	w.raw(">")
}

func (w *tableWriter) commentCell(comment *string) {
	if comment != nil {
		w.raw("<td>")
		w.text(*comment)
		w.raw("</td>")
	}
	w.raw("</tr>\n")
}
