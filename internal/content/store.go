package content

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Store reads and writes the page-content document. Reads never fail: a
// missing or corrupt file yields the default document. Writes are whole-file
// and atomic (temp file + rename), so the document is never half-written.
//
// There is no lock around read-merge-write: two concurrent updates to the
// same top-level key race last-write-wins. Accepted for single-admin usage.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Read returns the current document, or the defaults when the file cannot be
// read or parsed.
func (s *Store) Read() PageContent {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Printf("Could not read page content file: %v", err)
		return Default()
	}
	var doc PageContent
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("Could not parse page content file: %v", err)
		return Default()
	}
	return doc
}

// Update re-reads the document and shallow-merges the partial's fields over
// each top-level key it names; keys absent from the partial stay untouched.
func (s *Store) Update(partial map[string]map[string]interface{}) error {
	current := s.readRaw()

	for section, fields := range partial {
		merged := current[section]
		if merged == nil {
			merged = map[string]interface{}{}
		}
		for key, value := range fields {
			merged[key] = value
		}
		current[section] = merged
	}

	return s.writeAtomic(current)
}

// SectionPatch wraps a typed sub-document as the partial Update expects.
func SectionPatch(section string, doc interface{}) (map[string]map[string]interface{}, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal %s content: %w", section, err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode %s content: %w", section, err)
	}
	return map[string]map[string]interface{}{section: fields}, nil
}

// readRaw loads the document as raw maps so a merge touches only the fields
// the partial names. Falls back to the default document on any failure.
func (s *Store) readRaw() map[string]map[string]interface{} {
	data, err := os.ReadFile(s.path)
	if err == nil {
		var raw map[string]map[string]interface{}
		err = json.Unmarshal(data, &raw)
		if err == nil {
			return raw
		}
		log.Printf("Could not parse page content file: %v", err)
	}

	defaults, _ := json.Marshal(Default())
	var raw map[string]map[string]interface{}
	_ = json.Unmarshal(defaults, &raw)
	return raw
}

func (s *Store) writeAtomic(doc map[string]map[string]interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal page content: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create content directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write page content: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write page content: %w", err)
	}
	return nil
}
