package vanilla

import (
	"strings"

	"github.com/goliatone/go-contact/pkg/body"
	"github.com/goliatone/go-contact/pkg/encoding"
	"github.com/goliatone/go-contact/pkg/model"
	"github.com/goliatone/go-contact/pkg/pageindex"
	"github.com/goliatone/go-contact/pkg/render"
	"github.com/goliatone/go-contact/pkg/renderers/table"
)

// buildView flattens a contact into the template context. Presence checks
// happen here; the template only lays out what it is given.
func buildView(enc encoding.TextEncoder, bodyRenderer body.BodyRenderer, element render.ElementContext, options render.RenderOptions, contact model.Contact) (map[string]any, error) {
	text := enc.EscapeText
	attr := enc.EscapeAttribute

	data := map[string]any{
		"id": attr(pageindex.IDInPage(options.Indexer, contact.Page, contact.ID)),
		"classes": map[string]any{
			"table":  table.TableClass,
			"header": table.HeaderClass,
			"body":   table.BodyClass,
			"email":  table.EmailClass,
			"web":    table.WebClass,
		},
	}

	if style, ok := encoding.Coerce(options.StyleValue()); ok {
		data["hasStyle"] = true
		data["style"] = attr(style)
	}

	header := !contact.AddressOnly()
	data["header"] = header
	if header {
		data["label"] = text(contact.DisplayLabel())
	}

	data["rows"] = scalarRows(text, []labelled{
		{"Title:", contact.Title},
		{"First:", contact.First},
		{"Middle:", contact.Middle},
		{"Nick:", contact.Nick},
		{"Last:", contact.Last},
		{"Maiden:", contact.Maiden},
		{"Suffix:", contact.Suffix},
		{"Company:", contact.Company},
		{"Department:", contact.Department},
		{"Job Title:", contact.JobTitle},
	})

	emails := make([]any, 0, len(contact.Emails))
	for _, email := range contact.Emails {
		address := email.String()
		emails = append(emails, map[string]any{"href": attr(address), "text": text(address)})
	}
	data["emails"] = emails

	phones := make([]any, 0, len(contact.PhoneNumbers))
	for _, phone := range contact.PhoneNumbers {
		entry := map[string]any{
			"label":    text(phone.Type.Label()),
			"cssClass": attr(phone.Type.CSSClass()),
			"href":     attr(phone.Number),
			"text":     text(phone.Number),
		}
		addComment(entry, text, phone.Comment)
		phones = append(phones, entry)
	}
	data["phones"] = phones

	ims := make([]any, 0, len(contact.IMs))
	for _, im := range contact.IMs {
		entry := map[string]any{
			"label":    text(im.Type.Label()),
			"cssClass": attr(im.Type.CSSClass()),
			"text":     text(im.Handle),
		}
		addComment(entry, text, im.Comment)
		ims = append(ims, entry)
	}
	data["ims"] = ims

	pages := make([]any, 0, len(contact.WebPages))
	for _, page := range contact.WebPages {
		pages = append(pages, map[string]any{"href": attr(page), "text": text(page)})
	}
	data["webPages"] = pages

	addresses := make([]any, 0, len(contact.Addresses))
	for _, address := range contact.Addresses {
		addresses = append(addresses, map[string]any{
			"label":    text(address.Type.Label()),
			"cssClass": attr(address.Type.CSSClass()),
			"rows": scalarRows(text, []labelled{
				{"Address 1:", address.Address1},
				{"Address 2:", address.Address2},
				{"City:", address.City},
				{"State/Prov:", address.StateProv},
				{"ZIP/Postal:", address.ZIPPostal},
				{"Country:", address.Country},
				{"Comment:", address.Comment},
			}),
		})
	}
	data["addresses"] = addresses

	if contact.BodyLen() > 0 {
		var sb strings.Builder
		if err := bodyRenderer.RenderBody(element, contact, &sb); err != nil {
			return nil, err
		}
		data["hasBody"] = true
		data["body"] = sb.String()
	}

	return data, nil
}

type labelled struct {
	label string
	value *string
}

func scalarRows(text func(string) string, fields []labelled) []any {
	rows := make([]any, 0, len(fields))
	for _, field := range fields {
		if field.value == nil {
			continue
		}
		rows = append(rows, map[string]any{"label": text(field.label), "value": text(*field.value)})
	}
	return rows
}

func addComment(entry map[string]any, text func(string) string, comment *string) {
	entry["hasComment"] = comment != nil
	if comment != nil {
		entry["comment"] = text(*comment)
	}
}
