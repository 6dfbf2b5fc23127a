package encoding

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Coerce converts a style value into the text of an inline style attribute.
// The boolean is false when no attribute should be written. Supported values:
// string, []byte, fmt.Stringer, map[string]string (one declaration per key,
// sorted), and *theme.RendererConfig (its CSS variables). Anything else is
// formatted with fmt.Sprint. Structured values are passed through SanitizeCSS;
// plain strings are emitted as given and rely on attribute escaping.
func Coerce(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case []byte:
		if v == nil {
			return "", false
		}
		return string(v), true
	case map[string]string:
		return declarations(v), true
	case *theme.RendererConfig:
		if v == nil {
			return "", false
		}
		return declarations(v.CSSVars), true
	case theme.RendererConfig:
		return declarations(v.CSSVars), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

func declarations(props map[string]string) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for key := range props {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(SanitizeCSS(strings.TrimSpace(key)))
		b.WriteString(": ")
		b.WriteString(SanitizeCSS(strings.TrimSpace(props[key])))
		b.WriteByte(';')
	}
	return b.String()
}

var unsafeCSS = regexp.MustCompile(`(?i)(expression\s*\(|javascript\s*:|url\s*\(\s*['"]?\s*javascript:|[<>{};])`)

// SanitizeCSS removes constructs that could break out of a declaration or
// execute script: angle brackets, braces, semicolons, expression() and
// javascript: URLs.
func SanitizeCSS(s string) string {
	return unsafeCSS.ReplaceAllString(s, "")
}
