package model

import (
	"fmt"
	"strings"
)

// PhoneType classifies a phone number.
type PhoneType string

const (
	PhoneFax    PhoneType = "fax"
	PhoneHome   PhoneType = "home"
	PhoneMobile PhoneType = "mobile"
	PhoneWork   PhoneType = "work"
	PhonePager  PhoneType = "pager"
	PhoneOther  PhoneType = "other"
)

var phoneTypes = []enumEntry[PhoneType]{
	{PhoneFax, "Fax", "contact_phone_fax"},
	{PhoneHome, "Home", "contact_phone_home"},
	{PhoneMobile, "Mobile", "contact_phone_mobile"},
	{PhoneWork, "Work", "contact_phone_work"},
	{PhonePager, "Pager", "contact_phone_pager"},
	{PhoneOther, "Other", "contact_phone_other"},
}

// Label returns the display label, e.g. "Mobile".
func (t PhoneType) Label() string { return lookup(phoneTypes, t).label }

// CSSClass returns the class applied to the rendered number.
func (t PhoneType) CSSClass() string { return lookup(phoneTypes, t).cssClass }

// ParsePhoneType resolves a phone type by value or label. "cell" is accepted
// as an alias of mobile.
func ParsePhoneType(raw string) (PhoneType, error) {
	if strings.EqualFold(strings.TrimSpace(raw), "cell") {
		return PhoneMobile, nil
	}
	return parseEnum(phoneTypes, "phone", raw)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *PhoneType) UnmarshalText(text []byte) error {
	parsed, err := ParsePhoneType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// IMType classifies an instant-messaging handle.
type IMType string

const (
	IMAIM    IMType = "aim"
	IMJabber IMType = "jabber"
	IMSkype  IMType = "skype"
	IMYahoo  IMType = "yahoo"
	IMICQ    IMType = "icq"
	IMMSN    IMType = "msn"
	IMOther  IMType = "other"
)

var imTypes = []enumEntry[IMType]{
	{IMAIM, "AIM", "contact_im_aim"},
	{IMJabber, "Jabber", "contact_im_jabber"},
	{IMSkype, "Skype", "contact_im_skype"},
	{IMYahoo, "Yahoo", "contact_im_yahoo"},
	{IMICQ, "ICQ", "contact_im_icq"},
	{IMMSN, "MSN", "contact_im_msn"},
	{IMOther, "IM", "contact_im_other"},
}

// Label returns the display label, e.g. "Skype".
func (t IMType) Label() string { return lookup(imTypes, t).label }

// CSSClass returns the class applied to the rendered handle.
func (t IMType) CSSClass() string { return lookup(imTypes, t).cssClass }

// ParseIMType resolves an IM type by value or label.
func ParseIMType(raw string) (IMType, error) {
	return parseEnum(imTypes, "im", raw)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *IMType) UnmarshalText(text []byte) error {
	parsed, err := ParseIMType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// AddressType classifies a postal address.
type AddressType string

const (
	AddressHome     AddressType = "home"
	AddressWork     AddressType = "work"
	AddressMailing  AddressType = "mailing"
	AddressBilling  AddressType = "billing"
	AddressShipping AddressType = "shipping"
	AddressOther    AddressType = "other"
)

var addressTypes = []enumEntry[AddressType]{
	{AddressHome, "Home", "contact_address_home"},
	{AddressWork, "Work", "contact_address_work"},
	{AddressMailing, "Mailing", "contact_address_mailing"},
	{AddressBilling, "Billing", "contact_address_billing"},
	{AddressShipping, "Shipping", "contact_address_shipping"},
	{AddressOther, "Address", "contact_address_other"},
}

// Label returns the sub-header label, e.g. "Home".
func (t AddressType) Label() string { return lookup(addressTypes, t).label }

// CSSClass returns the class applied to the address sub-header.
func (t AddressType) CSSClass() string { return lookup(addressTypes, t).cssClass }

// ParseAddressType resolves an address type by value or label.
func ParseAddressType(raw string) (AddressType, error) {
	return parseEnum(addressTypes, "address", raw)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *AddressType) UnmarshalText(text []byte) error {
	parsed, err := ParseAddressType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// PhoneTypes lists every phone type in declaration order.
func PhoneTypes() []PhoneType { return values(phoneTypes) }

// IMTypes lists every IM type in declaration order.
func IMTypes() []IMType { return values(imTypes) }

// AddressTypes lists every address type in declaration order.
func AddressTypes() []AddressType { return values(addressTypes) }

type enumEntry[T ~string] struct {
	value    T
	label    string
	cssClass string
}

// lookup falls back to the last entry ("other") for unknown values so
// renderers always have a label and class to emit.
func lookup[T ~string](entries []enumEntry[T], value T) enumEntry[T] {
	for _, entry := range entries {
		if entry.value == value {
			return entry
		}
	}
	return entries[len(entries)-1]
}

func parseEnum[T ~string](entries []enumEntry[T], kind, raw string) (T, error) {
	trimmed := strings.TrimSpace(raw)
	for _, entry := range entries {
		if strings.EqualFold(trimmed, string(entry.value)) || strings.EqualFold(trimmed, entry.label) {
			return entry.value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("model: unknown %s type %q", kind, raw)
}

func values[T ~string](entries []enumEntry[T]) []T {
	out := make([]T, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.value)
	}
	return out
}
