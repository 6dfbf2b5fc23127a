package loader

import (
	"fmt"

	"github.com/goliatone/go-contact/pkg/model"
)

type contactFile struct {
	ID         string        `json:"id" yaml:"id"`
	Page       model.PageRef `json:"page" yaml:"page"`
	Label      *string       `json:"label" yaml:"label"`
	Title      *string       `json:"title" yaml:"title"`
	First      *string       `json:"first" yaml:"first"`
	Middle     *string       `json:"middle" yaml:"middle"`
	Nick       *string       `json:"nick" yaml:"nick"`
	Last       *string       `json:"last" yaml:"last"`
	Maiden     *string       `json:"maiden" yaml:"maiden"`
	Suffix     *string       `json:"suffix" yaml:"suffix"`
	JobTitle   *string       `json:"jobTitle" yaml:"jobTitle"`
	Company    *string       `json:"company" yaml:"company"`
	Department *string       `json:"department" yaml:"department"`

	Emails       []string      `json:"emails" yaml:"emails"`
	PhoneNumbers []phoneFile   `json:"phoneNumbers" yaml:"phoneNumbers"`
	IMs          []imFile      `json:"ims" yaml:"ims"`
	WebPages     []string      `json:"webPages" yaml:"webPages"`
	Addresses    []addressFile `json:"addresses" yaml:"addresses"`

	Body       string `json:"body" yaml:"body"`
	BodyFormat string `json:"bodyFormat" yaml:"bodyFormat"`
}

type phoneFile struct {
	Type    string  `json:"type" yaml:"type"`
	Number  string  `json:"number" yaml:"number"`
	Comment *string `json:"comment" yaml:"comment"`
}

type imFile struct {
	Type    string  `json:"type" yaml:"type"`
	Handle  string  `json:"handle" yaml:"handle"`
	Comment *string `json:"comment" yaml:"comment"`
}

type addressFile struct {
	Type      string  `json:"type" yaml:"type"`
	Address1  *string `json:"address1" yaml:"address1"`
	Address2  *string `json:"address2" yaml:"address2"`
	City      *string `json:"city" yaml:"city"`
	StateProv *string `json:"stateProv" yaml:"stateProv"`
	ZIPPostal *string `json:"zipPostal" yaml:"zipPostal"`
	Country   *string `json:"country" yaml:"country"`
	Comment   *string `json:"comment" yaml:"comment"`
}

func (c contactFile) empty() bool {
	candidate := c
	candidate.BodyFormat = ""
	converted, err := candidate.toContact()
	if err != nil {
		return false
	}
	return converted.ID == "" && converted.Page.IsZero() && converted.Label == nil &&
		!converted.HasIdentity() && len(converted.Emails) == 0 && len(converted.PhoneNumbers) == 0 &&
		len(converted.IMs) == 0 && len(converted.WebPages) == 0 && len(converted.Addresses) == 0 &&
		converted.BodyLen() == 0
}

func (c contactFile) toContact() (model.Contact, error) {
	contact := model.Contact{
		ID:         c.ID,
		Page:       c.Page,
		Label:      c.Label,
		Title:      c.Title,
		First:      c.First,
		Middle:     c.Middle,
		Nick:       c.Nick,
		Last:       c.Last,
		Maiden:     c.Maiden,
		Suffix:     c.Suffix,
		JobTitle:   c.JobTitle,
		Company:    c.Company,
		Department: c.Department,
		WebPages:   append([]string(nil), c.WebPages...),
	}

	for idx, raw := range c.Emails {
		email, err := model.ParseEmail(raw)
		if err != nil {
			return model.Contact{}, fmt.Errorf("emails[%d]: %w", idx, err)
		}
		contact.Emails = append(contact.Emails, email)
	}

	for idx, raw := range c.PhoneNumbers {
		kind, err := model.ParsePhoneType(raw.Type)
		if err != nil {
			return model.Contact{}, fmt.Errorf("phoneNumbers[%d]: %w", idx, err)
		}
		contact.PhoneNumbers = append(contact.PhoneNumbers, model.PhoneNumber{
			Type:    kind,
			Number:  raw.Number,
			Comment: raw.Comment,
		})
	}

	for idx, raw := range c.IMs {
		kind, err := model.ParseIMType(raw.Type)
		if err != nil {
			return model.Contact{}, fmt.Errorf("ims[%d]: %w", idx, err)
		}
		contact.IMs = append(contact.IMs, model.IM{
			Type:    kind,
			Handle:  raw.Handle,
			Comment: raw.Comment,
		})
	}

	for idx, raw := range c.Addresses {
		kind, err := model.ParseAddressType(raw.Type)
		if err != nil {
			return model.Contact{}, fmt.Errorf("addresses[%d]: %w", idx, err)
		}
		contact.Addresses = append(contact.Addresses, model.Address{
			Type:      kind,
			Address1:  raw.Address1,
			Address2:  raw.Address2,
			City:      raw.City,
			StateProv: raw.StateProv,
			ZIPPostal: raw.ZIPPostal,
			Country:   raw.Country,
			Comment:   raw.Comment,
		})
	}

	if c.Body != "" {
		contact.Body = model.TextBody(c.Body)
	}
	return contact, nil
}
