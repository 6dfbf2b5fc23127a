package model

import (
	"io"
	"strings"
)

// DisplayLabel returns the text shown in the contact header. An explicit
// Label wins; otherwise the name parts are joined as
// `Title First Middle "Nick" Last (Maiden) Suffix`. Contacts without any name
// parts fall back to company, department, then the first email address.
func (c Contact) DisplayLabel() string {
	if c.Label != nil {
		return *c.Label
	}

	parts := make([]string, 0, 7)
	add := func(value *string, prefix, suffix string) {
		if value == nil {
			return
		}
		trimmed := strings.TrimSpace(*value)
		if trimmed == "" {
			return
		}
		parts = append(parts, prefix+trimmed+suffix)
	}
	add(c.Title, "", "")
	add(c.First, "", "")
	add(c.Middle, "", "")
	add(c.Nick, `"`, `"`)
	add(c.Last, "", "")
	add(c.Maiden, "(", ")")
	add(c.Suffix, "", "")
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}

	for _, fallback := range []*string{c.Company, c.Department} {
		if trimmed := strings.TrimSpace(Value(fallback)); trimmed != "" {
			return trimmed
		}
	}
	if len(c.Emails) > 0 {
		return c.Emails[0].String()
	}
	return ""
}

// AppendLabel writes the display label to w. Callers wrap w in an encoding
// writer when the label must be escaped.
func (c Contact) AppendLabel(w io.Writer) error {
	_, err := io.WriteString(w, c.DisplayLabel())
	return err
}
