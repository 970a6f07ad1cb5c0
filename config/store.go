// Package config is a small persistent key/value store for user settings.
//
// Settings are kept as a YAML document and written through to a Backend on
// every Put, so a power cut loses at most the write in flight.
package config

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"drawbot/hal"
)

const documentVersion = 1

// Setting keys used by the programs.
const (
	KeyAPName  = "AP_NAME"
	KeyAPPass  = "AP_PASS"
	KeyMessage = "MESSAGE"
	KeyFont    = "FONT"
	KeyScale   = "SCALE"
)

var ErrNoBackend = errors.New("config: no backend")

// Backend loads and saves the raw document. Load returns empty data when
// nothing has been saved yet.
type Backend interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

type document struct {
	Version  int               `yaml:"version"`
	Settings map[string]string `yaml:"settings,omitempty"`
}

// Store is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	backend Backend
	log     hal.Logger
	doc     document
}

// Defaults are the factory settings written by Reset.
func Defaults() map[string]string {
	return map[string]string{
		KeyAPName: "TurtleBot",
		KeyAPPass: "turtlebot",
	}
}

// Open loads the store from b. A missing, unreadable or corrupt document
// gives an empty store that will overwrite it on the next Put.
func Open(b Backend, log hal.Logger) *Store {
	s := &Store{backend: b, log: log}
	s.doc = newDocument()
	if b == nil {
		return s
	}

	data, err := b.Load()
	if err != nil {
		s.logf("config: load failed, starting empty: %v", err)
		return s
	}
	if len(data) == 0 {
		return s
	}

	doc, err := decode(data)
	if err != nil {
		s.logf("config: %v, starting empty", err)
		return s
	}
	s.doc = doc
	return s
}

// Get returns the value for key, or "" when unset.
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Settings[key]
}

// Put stores value and saves the document.
func (s *Store) Put(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Settings[key] = value
	return s.saveLocked()
}

// Keys returns the set keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.doc.Settings))
	for k := range s.doc.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset replaces every setting with values and saves.
func (s *Store) Reset(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = newDocument()
	for k, v := range values {
		s.doc.Settings[k] = v
	}
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if s.backend == nil {
		return ErrNoBackend
	}
	data, err := yaml.Marshal(&s.doc)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := s.backend.Save(data); err != nil {
		return fmt.Errorf("config: save: %w", err)
	}
	return nil
}

func (s *Store) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

func newDocument() document {
	return document{Version: documentVersion, Settings: make(map[string]string)}
}

func decode(data []byte) (document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("parse document: %w", err)
	}
	if doc.Version != documentVersion {
		return document{}, fmt.Errorf("unsupported document version %d", doc.Version)
	}
	if doc.Settings == nil {
		doc.Settings = make(map[string]string)
	}
	return doc, nil
}
