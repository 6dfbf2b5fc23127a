package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contact/pkg/loader"
	"github.com/goliatone/go-contact/pkg/model"
)

// MustLoadContact reads a fixture and returns the contact with the given id.
// An empty id returns the first contact in the file.
func MustLoadContact(t *testing.T, path, id string) model.Contact {
	t.Helper()

	contact, err := LoadContact(path, id)
	if err != nil {
		t.Fatalf("load contact: %v", err)
	}
	return contact
}

// LoadContact returns a contact without requiring testing.T, allowing callers
// to wire fixtures in setup functions.
func LoadContact(path, id string) (model.Contact, error) {
	if path == "" {
		return model.Contact{}, errors.New("testsupport: contact path is required")
	}
	store, err := loader.LoadFile(path)
	if err != nil {
		return model.Contact{}, fmt.Errorf("testsupport: %w", err)
	}
	if id == "" {
		return store.Records()[0].Contact, nil
	}
	record, ok := store.Contact(id)
	if !ok {
		return model.Contact{}, fmt.Errorf("testsupport: contact %q not found in %s", id, path)
	}
	return record.Contact, nil
}

// SampleContact returns a contact that exercises every row type: names,
// an email, phones with and without comments, an IM, a web page, a home
// address, and a markup body.
func SampleContact() model.Contact {
	return model.Contact{
		Page:    model.PageRef{Book: "/site", Path: "/team.html"},
		ID:      "jane",
		First:   model.String("Jane"),
		Last:    model.String("Doe"),
		Company: model.String("Jane & Co"),
		Emails:  []model.Email{model.MustEmail("jane@example.com")},
		PhoneNumbers: []model.PhoneNumber{
			{Type: model.PhoneMobile, Number: "555 123 4567"},
			{Type: model.PhoneWork, Number: "555 000 1111", Comment: model.String("ext. 12")},
		},
		IMs:      []model.IM{{Type: model.IMSkype, Handle: "jane.doe"}},
		WebPages: []string{"https://example.com/?a=1&b=2"},
		Addresses: []model.Address{{
			Type:      model.AddressHome,
			Address1:  model.String("1 Main St"),
			City:      model.String("Mobile"),
			StateProv: model.String("AL"),
			ZIPPostal: model.String("36695"),
			Country:   model.String("USA"),
		}},
		Body: model.TextBody("<p>Notes</p>"),
	}
}

// FailingWriter accepts the first After writes and then fails every write
// with Err. It counts attempts so tests can sweep the failure point across
// an entire render.
type FailingWriter struct {
	After  int
	Err    error
	Writes int
	buf    bytes.Buffer
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	w.Writes++
	if w.Writes > w.After {
		return 0, w.Err
	}
	return w.buf.Write(p)
}

// String returns what was accepted before the failure.
func (w *FailingWriter) String() string {
	return w.buf.String()
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
