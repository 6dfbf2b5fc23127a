// Package loader reads contact documents from JSON or YAML files. A document
// either holds a single contact at the top level or a `contacts` list:
//
//	contacts:
//	  - id: jane
//	    page: {book: /site, path: /team.html}
//	    first: Jane
//	    emails: [jane@example.com]
//	    phoneNumbers:
//	      - {type: mobile, number: 555 123 4567}
//	    body: "**Office hours** 9-5"
//	    bodyFormat: markdown
//
// Keys that are present with a null value are treated as absent; keys with
// an empty string are kept, matching how renderers distinguish the two.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-contact/pkg/model"
)

// ErrNoContacts is returned when a document parses but declares no contacts.
var ErrNoContacts = errors.New("loader: no contacts defined")

// Record is a loaded contact plus document-level hints.
type Record struct {
	Contact model.Contact
	// BodyFormat names the body renderer the author asked for (trusted, text,
	// sanitized, markdown). Empty means the caller decides.
	BodyFormat string
	Source     string
}

// Store holds records in load order, addressable by contact id.
type Store struct {
	records []Record
	byID    map[string]int
}

// LoadFS walks fsys and parses every JSON/YAML file it finds. Files are
// visited in lexical order. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isContactFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("loader: read %s: %w", path, err)
		}
		records, err := Parse(data, path)
		if err != nil {
			return err
		}
		return store.add(records...)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile parses a single document from disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	records, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	store := newStore()
	if err := store.add(records...); err != nil {
		return nil, err
	}
	return store, nil
}

// Parse decodes one document. source is used in error messages only.
func Parse(data []byte, source string) ([]Record, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}

	raws := doc.Contacts
	if len(raws) == 0 && !doc.Single.empty() {
		raws = []contactFile{doc.Single}
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoContacts, source)
	}

	records := make([]Record, 0, len(raws))
	for idx, raw := range raws {
		contact, err := raw.toContact()
		if err != nil {
			return nil, fmt.Errorf("loader: %s contact %d: %w", source, idx, err)
		}
		records = append(records, Record{
			Contact:    contact,
			BodyFormat: strings.ToLower(strings.TrimSpace(raw.BodyFormat)),
			Source:     source,
		})
	}
	return records, nil
}

// Records returns the loaded records in order.
func (s *Store) Records() []Record {
	if s == nil {
		return nil
	}
	return append([]Record(nil), s.records...)
}

// Contact looks up a record by contact id.
func (s *Store) Contact(id string) (Record, bool) {
	if s == nil {
		return Record{}, false
	}
	idx, ok := s.byID[id]
	if !ok {
		return Record{}, false
	}
	return s.records[idx], true
}

// Pages returns the distinct pages referenced by the records, in first-seen
// order. Callers feed these to pageindex.New when rendering a combined view.
func (s *Store) Pages() []model.PageRef {
	if s == nil {
		return nil
	}
	seen := make(map[model.PageRef]struct{}, len(s.records))
	var out []model.PageRef
	for _, record := range s.records {
		page := record.Contact.Page
		if page.IsZero() {
			continue
		}
		if _, ok := seen[page]; ok {
			continue
		}
		seen[page] = struct{}{}
		out = append(out, page)
	}
	return out
}

// Empty reports whether the store holds any records.
func (s *Store) Empty() bool {
	return s == nil || len(s.records) == 0
}

func newStore() *Store {
	return &Store{byID: make(map[string]int)}
}

func (s *Store) add(records ...Record) error {
	for _, record := range records {
		id := record.Contact.ID
		if id != "" {
			if prev, exists := s.byID[id]; exists {
				return fmt.Errorf("loader: duplicate contact id %q (files %s and %s)", id, s.records[prev].Source, record.Source)
			}
			s.byID[id] = len(s.records)
		}
		s.records = append(s.records, record)
	}
	return nil
}

type documentFile struct {
	Contacts []contactFile `json:"contacts" yaml:"contacts"`
	Single   contactFile   `json:"-" yaml:",inline"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("loader: file %s is empty", source)
	}

	var list struct {
		Contacts []contactFile `json:"contacts"`
	}
	var single contactFile
	if err := json.Unmarshal(data, &list); err == nil {
		if err := json.Unmarshal(data, &single); err == nil {
			return documentFile{Contacts: list.Contacts, Single: single}, nil
		}
	}

	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("loader: parse %s: %w", source, err)
	}
	return doc, nil
}

func isContactFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
