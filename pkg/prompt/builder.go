package prompt

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-contact/pkg/model"
)

// Option configures a Builder.
type Option func(*Builder)

// WithDriver overrides the prompt driver. The survey driver is used when
// omitted.
func WithDriver(driver PromptDriver) Option {
	return func(b *Builder) {
		if driver != nil {
			b.driver = driver
		}
	}
}

// WithLogger sets the logger used for tracing answered sections.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithPage sets the page reference assigned to built contacts.
func WithPage(page model.PageRef) Option {
	return func(b *Builder) {
		b.page = page
	}
}

// Builder walks a user through entering a contact field by field.
// Blank answers to optional questions leave the field absent.
type Builder struct {
	driver PromptDriver
	logger *zap.Logger
	page   model.PageRef
}

func NewBuilder(options ...Option) *Builder {
	b := &Builder{logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	if b.driver == nil {
		b.driver = NewSurveyDriver(nil)
	}
	return b
}

// Build runs the prompt sequence and returns the collected contact.
func (b *Builder) Build(ctx context.Context) (model.Contact, error) {
	contact := model.Contact{Page: b.page}

	id, err := b.driver.Input(ctx, InputConfig{
		Message:   "Contact id:",
		Help:      "Used to derive the table element id.",
		Validator: required("id"),
	})
	if err != nil {
		return model.Contact{}, err
	}
	contact.ID = strings.TrimSpace(id)

	for _, field := range []struct {
		message string
		target  **string
	}{
		{"Title:", &contact.Title},
		{"First name:", &contact.First},
		{"Middle name:", &contact.Middle},
		{"Nickname:", &contact.Nick},
		{"Last name:", &contact.Last},
		{"Maiden name:", &contact.Maiden},
		{"Suffix:", &contact.Suffix},
		{"Company:", &contact.Company},
		{"Department:", &contact.Department},
		{"Job title:", &contact.JobTitle},
	} {
		if *field.target, err = b.optional(ctx, field.message); err != nil {
			return model.Contact{}, err
		}
	}

	if err := b.repeat(ctx, "Add an email address?", func() error {
		raw, err := b.driver.Input(ctx, InputConfig{Message: "Email:", Validator: validEmail})
		if err != nil {
			return err
		}
		email, err := model.ParseEmail(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		contact.Emails = append(contact.Emails, email)
		return nil
	}); err != nil {
		return model.Contact{}, err
	}

	if err := b.repeat(ctx, "Add a phone number?", func() error {
		phoneType, err := choose(ctx, b.driver, "Phone type:", model.PhoneTypes())
		if err != nil {
			return err
		}
		number, err := b.driver.Input(ctx, InputConfig{Message: "Number:", Validator: required("number")})
		if err != nil {
			return err
		}
		comment, err := b.optional(ctx, "Comment:")
		if err != nil {
			return err
		}
		contact.PhoneNumbers = append(contact.PhoneNumbers, model.PhoneNumber{
			Type:    phoneType,
			Number:  strings.TrimSpace(number),
			Comment: comment,
		})
		return nil
	}); err != nil {
		return model.Contact{}, err
	}

	if err := b.repeat(ctx, "Add an instant messaging handle?", func() error {
		imType, err := choose(ctx, b.driver, "Service:", model.IMTypes())
		if err != nil {
			return err
		}
		handle, err := b.driver.Input(ctx, InputConfig{Message: "Handle:", Validator: required("handle")})
		if err != nil {
			return err
		}
		comment, err := b.optional(ctx, "Comment:")
		if err != nil {
			return err
		}
		contact.IMs = append(contact.IMs, model.IM{
			Type:    imType,
			Handle:  strings.TrimSpace(handle),
			Comment: comment,
		})
		return nil
	}); err != nil {
		return model.Contact{}, err
	}

	if err := b.repeat(ctx, "Add a web page?", func() error {
		url, err := b.driver.Input(ctx, InputConfig{Message: "URL:", Validator: required("url")})
		if err != nil {
			return err
		}
		contact.WebPages = append(contact.WebPages, strings.TrimSpace(url))
		return nil
	}); err != nil {
		return model.Contact{}, err
	}

	if err := b.repeat(ctx, "Add an address?", func() error {
		addressType, err := choose(ctx, b.driver, "Address type:", model.AddressTypes())
		if err != nil {
			return err
		}
		address := model.Address{Type: addressType}
		for _, field := range []struct {
			message string
			target  **string
		}{
			{"Address 1:", &address.Address1},
			{"Address 2:", &address.Address2},
			{"City:", &address.City},
			{"State/Province:", &address.StateProv},
			{"ZIP/Postal code:", &address.ZIPPostal},
			{"Country:", &address.Country},
			{"Comment:", &address.Comment},
		} {
			if *field.target, err = b.optional(ctx, field.message); err != nil {
				return err
			}
		}
		contact.Addresses = append(contact.Addresses, address)
		return nil
	}); err != nil {
		return model.Contact{}, err
	}

	addBody, err := b.driver.Confirm(ctx, ConfirmConfig{Message: "Add a body?"})
	if err != nil {
		return model.Contact{}, err
	}
	if addBody {
		text, err := b.driver.TextArea(ctx, TextAreaConfig{Message: "Body:", Help: "Rendered below the contact rows."})
		if err != nil {
			return model.Contact{}, err
		}
		if text != "" {
			contact.Body = model.TextBody(text)
		}
	}

	b.logger.Debug("contact collected",
		zap.String("id", contact.ID),
		zap.Int("emails", len(contact.Emails)),
		zap.Int("phones", len(contact.PhoneNumbers)),
		zap.Int("ims", len(contact.IMs)),
		zap.Int("web_pages", len(contact.WebPages)),
		zap.Int("addresses", len(contact.Addresses)),
	)

	if err := b.driver.Info(ctx, fmt.Sprintf("Captured contact %q.", contact.ID)); err != nil {
		return model.Contact{}, err
	}
	return contact, nil
}

func (b *Builder) optional(ctx context.Context, message string) (*string, error) {
	answer, err := b.driver.Input(ctx, InputConfig{Message: message, Help: "Leave blank to skip."})
	if err != nil {
		return nil, err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, nil
	}
	return model.String(answer), nil
}

func (b *Builder) repeat(ctx context.Context, message string, add func() error) error {
	for {
		more, err := b.driver.Confirm(ctx, ConfirmConfig{Message: message})
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if err := add(); err != nil {
			return err
		}
	}
}

type labelled interface {
	~string
	Label() string
}

func choose[T labelled](ctx context.Context, driver PromptDriver, message string, values []T) (T, error) {
	options := make([]string, len(values))
	for i, value := range values {
		options[i] = value.Label()
	}
	idx, err := driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		var zero T
		return zero, err
	}
	if idx < 0 || idx >= len(values) {
		var zero T
		return zero, fmt.Errorf("prompt: %s selection %d out of range", strings.TrimSuffix(message, ":"), idx)
	}
	return values[idx], nil
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validEmail(s string) error {
	_, err := model.ParseEmail(strings.TrimSpace(s))
	return err
}
