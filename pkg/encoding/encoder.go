// Package encoding escapes text for the two markup contexts contact renderers
// write into: element content and quoted attribute values. Encoders are
// injected so callers can swap in a templating engine's escaper.
package encoding

import (
	"strings"
)

// TextEncoder escapes strings for HTML element content and attribute values.
type TextEncoder interface {
	EscapeText(s string) string
	EscapeAttribute(s string) string
}

// XHTML is the default encoder. Text escaping covers the characters that can
// open markup; attribute escaping additionally covers both quote styles and
// the whitespace characters attribute normalisation would otherwise fold.
// Control characters that are not allowed in XHTML are dropped in both modes.
var XHTML TextEncoder = xhtmlEncoder{}

type xhtmlEncoder struct{}

var (
	textReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attributeReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\t", "&#9;",
		"\n", "&#10;",
		"\r", "&#13;",
	)
)

func (xhtmlEncoder) EscapeText(s string) string {
	return textReplacer.Replace(stripInvalid(s))
}

func (xhtmlEncoder) EscapeAttribute(s string) string {
	return attributeReplacer.Replace(stripInvalid(s))
}

func stripInvalid(s string) string {
	if strings.IndexFunc(s, invalidXML) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if invalidXML(r) {
			return -1
		}
		return r
	}, s)
}

func invalidXML(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return false
	case r < 0x20:
		return true
	case r == 0xFFFE || r == 0xFFFF:
		return true
	default:
		return false
	}
}
