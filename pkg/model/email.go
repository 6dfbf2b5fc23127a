package model

import (
	"errors"
	"fmt"
	"strings"
)

// Email is a validated email address. The zero value is invalid; construct
// values with ParseEmail or MustEmail.
type Email struct {
	address string
}

// ParseEmail checks the structural shape of an address: a single @ separating
// a non-empty local part from a well-formed domain, no whitespace or angle
// brackets. The original text is preserved unchanged.
func ParseEmail(raw string) (Email, error) {
	if raw == "" {
		return Email{}, errors.New("model: email is empty")
	}
	if strings.ContainsAny(raw, " \t\r\n<>") {
		return Email{}, fmt.Errorf("model: email %q contains invalid characters", raw)
	}
	at := strings.LastIndexByte(raw, '@')
	if at <= 0 || at == len(raw)-1 {
		return Email{}, fmt.Errorf("model: email %q must have a local part and a domain", raw)
	}
	if strings.Count(raw, "@") > 1 {
		return Email{}, fmt.Errorf("model: email %q has more than one @", raw)
	}
	domain := raw[at+1:]
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") || strings.Contains(domain, "..") {
		return Email{}, fmt.Errorf("model: email %q has a malformed domain", raw)
	}
	return Email{address: raw}, nil
}

// MustEmail is ParseEmail that panics on error. Intended for fixtures.
func MustEmail(raw string) Email {
	email, err := ParseEmail(raw)
	if err != nil {
		panic(err)
	}
	return email
}

// String returns the address exactly as parsed.
func (e Email) String() string {
	return e.address
}

// Domain returns the part after the @.
func (e Email) Domain() string {
	if at := strings.LastIndexByte(e.address, '@'); at >= 0 {
		return e.address[at+1:]
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler.
func (e Email) MarshalText() ([]byte, error) {
	return []byte(e.address), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Email) UnmarshalText(text []byte) error {
	parsed, err := ParseEmail(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
