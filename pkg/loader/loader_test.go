package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contact/pkg/loader"
	"github.com/goliatone/go-contact/pkg/model"
)

func TestLoadFS(t *testing.T) {
	store, err := loader.LoadFS(os.DirFS(filepath.Join("testdata", "contacts")))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Empty() {
		t.Fatalf("expected records")
	}

	// support.json sorts before team.yaml.
	var ids []string
	for _, record := range store.Records() {
		ids = append(ids, record.Contact.ID)
	}
	if diff := cmp.Diff([]string{"support", "jane", "hq"}, ids); diff != "" {
		t.Fatalf("record order mismatch (-want +got):\n%s", diff)
	}

	jane, ok := store.Contact("jane")
	if !ok {
		t.Fatalf("jane missing")
	}
	c := jane.Contact
	if model.Value(c.First) != "Jane" || model.Value(c.Company) != "Jane & Co" {
		t.Fatalf("unexpected names: %+v", c)
	}
	if c.Middle == nil || *c.Middle != "" {
		t.Fatalf("expected empty middle to be kept, got %v", c.Middle)
	}
	if c.Nick != nil {
		t.Fatalf("expected null nick to be absent")
	}
	if c.PhoneNumbers[0].Type != model.PhoneMobile || c.PhoneNumbers[0].Number != "555 123 4567" {
		t.Fatalf("unexpected phone: %+v", c.PhoneNumbers[0])
	}
	if model.Value(c.PhoneNumbers[1].Comment) != "ext. 12" {
		t.Fatalf("expected work phone comment")
	}
	if c.IMs[0].Type != model.IMSkype {
		t.Fatalf("unexpected im type %q", c.IMs[0].Type)
	}
	if model.Value(c.Addresses[0].ZIPPostal) != "36695" {
		t.Fatalf("unexpected zip %v", c.Addresses[0].ZIPPostal)
	}
	if jane.BodyFormat != "markdown" {
		t.Fatalf("body format not normalised: %q", jane.BodyFormat)
	}
	if body, _ := model.ReadBody(c.Body); body != "**Office hours** 9-5" {
		t.Fatalf("unexpected body %q", body)
	}

	hq, _ := store.Contact("hq")
	if !hq.Contact.AddressOnly() {
		t.Fatalf("expected hq to be address-only")
	}

	support, _ := store.Contact("support")
	if model.Value(support.Contact.Label) != "Support desk" || support.Contact.IMs[0].Type != model.IMJabber {
		t.Fatalf("unexpected support contact: %+v", support.Contact)
	}
	if model.Value(support.Contact.IMs[0].Comment) != "24/7" {
		t.Fatalf("expected im comment")
	}

	wantPages := []model.PageRef{
		{Book: "/site", Path: "/team.html"},
		{Book: "/site", Path: "/about.html"},
	}
	if diff := cmp.Diff(wantPages, store.Pages()); diff != "" {
		t.Fatalf("pages mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFSNil(t *testing.T) {
	store, err := loader.LoadFS(nil)
	if err != nil {
		t.Fatalf("load nil: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestLoadFSDuplicateIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("id: jane\nfirst: Jane\n")},
		"b.yaml": {Data: []byte("id: jane\nfirst: Janet\n")},
	}
	_, err := loader.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), `duplicate contact id "jane"`) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"empty", "   ", "is empty"},
		{"invalid email", "id: x\nemails: [nope]\n", "emails[0]"},
		{"unknown phone type", "id: x\nphoneNumbers: [{type: satellite, number: '1'}]\n", "phoneNumbers[0]"},
		{"unknown address type", "addresses: [{type: moon}]\n", "addresses[0]"},
		{"malformed", "first: [unterminated\n", "parse bad.yaml"},
	}
	for _, tc := range cases {
		_, err := loader.Parse([]byte(tc.data), "bad.yaml")
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.want, err)
		}
	}

	_, err := loader.Parse([]byte("contacts: []\n"), "none.yaml")
	if !errors.Is(err, loader.ErrNoContacts) {
		t.Fatalf("expected ErrNoContacts, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	store, err := loader.LoadFile(filepath.Join("testdata", "contacts", "support.json"))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if len(store.Records()) != 1 {
		t.Fatalf("expected one record, got %d", len(store.Records()))
	}
	if _, err := loader.LoadFile(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Fatalf("expected missing file error")
	}
}
