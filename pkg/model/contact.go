package model

import "slices"

// PageRef identifies the page that owns a contact element. Book scopes the
// path so identical paths in different books resolve to distinct pages.
type PageRef struct {
	Book string `json:"book,omitempty" yaml:"book,omitempty"`
	Path string `json:"path" yaml:"path"`
}

// String renders the reference as book:path, or just the path when the book
// is empty.
func (p PageRef) String() string {
	if p.Book == "" {
		return p.Path
	}
	return p.Book + ":" + p.Path
}

// IsZero reports whether the reference points nowhere.
func (p PageRef) IsZero() bool {
	return p.Book == "" && p.Path == ""
}

// PhoneNumber is a typed number with an optional free-text comment.
type PhoneNumber struct {
	Type    PhoneType `json:"type" yaml:"type"`
	Number  string    `json:"number" yaml:"number"`
	Comment *string   `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// IM is an instant-messaging handle.
type IM struct {
	Type    IMType  `json:"type" yaml:"type"`
	Handle  string  `json:"handle" yaml:"handle"`
	Comment *string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Address is a postal address. Every line is optional.
type Address struct {
	Type      AddressType `json:"type" yaml:"type"`
	Address1  *string     `json:"address1,omitempty" yaml:"address1,omitempty"`
	Address2  *string     `json:"address2,omitempty" yaml:"address2,omitempty"`
	City      *string     `json:"city,omitempty" yaml:"city,omitempty"`
	StateProv *string     `json:"stateProv,omitempty" yaml:"stateProv,omitempty"`
	ZIPPostal *string     `json:"zipPostal,omitempty" yaml:"zipPostal,omitempty"`
	Country   *string     `json:"country,omitempty" yaml:"country,omitempty"`
	Comment   *string     `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Contact is a person or organisation embedded in a page. Renderers treat it
// as read-only.
type Contact struct {
	Page PageRef `json:"page" yaml:"page"`
	ID   string  `json:"id" yaml:"id"`

	// Label overrides the derived display name used in table headers.
	Label *string `json:"label,omitempty" yaml:"label,omitempty"`

	Title      *string `json:"title,omitempty" yaml:"title,omitempty"`
	First      *string `json:"first,omitempty" yaml:"first,omitempty"`
	Middle     *string `json:"middle,omitempty" yaml:"middle,omitempty"`
	Nick       *string `json:"nick,omitempty" yaml:"nick,omitempty"`
	Last       *string `json:"last,omitempty" yaml:"last,omitempty"`
	Maiden     *string `json:"maiden,omitempty" yaml:"maiden,omitempty"`
	Suffix     *string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	JobTitle   *string `json:"jobTitle,omitempty" yaml:"jobTitle,omitempty"`
	Company    *string `json:"company,omitempty" yaml:"company,omitempty"`
	Department *string `json:"department,omitempty" yaml:"department,omitempty"`

	Emails       []Email       `json:"emails,omitempty" yaml:"emails,omitempty"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers,omitempty" yaml:"phoneNumbers,omitempty"`
	IMs          []IM          `json:"ims,omitempty" yaml:"ims,omitempty"`
	WebPages     []string      `json:"webPages,omitempty" yaml:"webPages,omitempty"`
	Addresses    []Address     `json:"addresses,omitempty" yaml:"addresses,omitempty"`

	Body Body `json:"-" yaml:"-"`
}

// HasIdentity reports whether any named-person or organisation field is set.
func (c Contact) HasIdentity() bool {
	for _, field := range c.identityFields() {
		if field != nil {
			return true
		}
	}
	return false
}

// AddressOnly reports whether the contact carries addresses and nothing else
// that would normally sit under a contact header. The body is not considered.
func (c Contact) AddressOnly() bool {
	if c.HasIdentity() {
		return false
	}
	if len(c.Emails) > 0 || len(c.PhoneNumbers) > 0 || len(c.IMs) > 0 || len(c.WebPages) > 0 {
		return false
	}
	return len(c.Addresses) > 0
}

// BodyLen returns the body length, treating a nil body as empty.
func (c Contact) BodyLen() int {
	if c.Body == nil {
		return 0
	}
	return c.Body.Len()
}

// Clone returns a copy of c that shares no slices or string pointers with it.
// The body is carried over as is.
func (c Contact) Clone() Contact {
	out := c
	out.Label = clonePtr(c.Label)
	for _, field := range []**string{
		&out.Title, &out.First, &out.Middle, &out.Nick, &out.Last,
		&out.Maiden, &out.Suffix, &out.JobTitle, &out.Company, &out.Department,
	} {
		*field = clonePtr(*field)
	}

	out.Emails = slices.Clone(c.Emails)
	out.WebPages = slices.Clone(c.WebPages)
	out.PhoneNumbers = slices.Clone(c.PhoneNumbers)
	for i := range out.PhoneNumbers {
		out.PhoneNumbers[i].Comment = clonePtr(out.PhoneNumbers[i].Comment)
	}
	out.IMs = slices.Clone(c.IMs)
	for i := range out.IMs {
		out.IMs[i].Comment = clonePtr(out.IMs[i].Comment)
	}
	out.Addresses = slices.Clone(c.Addresses)
	for i := range out.Addresses {
		a := &out.Addresses[i]
		for _, field := range []**string{
			&a.Address1, &a.Address2, &a.City, &a.StateProv, &a.ZIPPostal, &a.Country, &a.Comment,
		} {
			*field = clonePtr(*field)
		}
	}
	return out
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (c Contact) identityFields() []*string {
	return []*string{
		c.Title, c.First, c.Middle, c.Nick, c.Last,
		c.Maiden, c.Suffix, c.JobTitle, c.Company, c.Department,
	}
}

// String returns a pointer to s. Useful when building contacts in code.
func String(s string) *string {
	return &s
}

// Value dereferences p, returning "" for nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
