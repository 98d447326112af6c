// Package localstore is the static-site variant of the content store:
// the whole menu lives in one JSON document, the way the original pages
// kept it under a single localStorage key. It implements the same
// repository contracts as the Postgres layer so the rest of the app
// cannot tell the difference.
package localstore

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"
)

type storedText struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type storedCategory struct {
	ID           string                `json:"id"`
	ImageURL     *string               `json:"image_url,omitempty"`
	OrderIndex   *int                  `json:"order_index,omitempty"`
	Translations map[string]storedText `json:"translations"`
}

type storedItem struct {
	ID           string                `json:"id"`
	CategoryID   string                `json:"category_id"`
	Price        *int                  `json:"price,omitempty"`
	ImageURL     *string               `json:"image_url,omitempty"`
	Availability bool                  `json:"availability"`
	Translations map[string]storedText `json:"translations"`
}

type storedIcon struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

type document struct {
	Categories []storedCategory `json:"categories"`
	Items      []storedItem     `json:"items"`
	Icons      []storedIcon     `json:"icons,omitempty"`
}

// Store holds the document in memory and persists every mutation back
// to the file. Subscribers are notified after each save and after a
// Reload that found external changes, mirroring the storage-event
// re-render of the static pages.
type Store struct {
	mu          sync.Mutex
	path        string
	doc         document
	modTime     time.Time
	subscribers []func()
}

func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return s, nil
	}
	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, err
	}
	if info, err := os.Stat(path); err == nil {
		s.modTime = info.ModTime()
	}
	return s, nil
}

// Subscribe registers a listener called after every change to the
// document, whether made through this store or detected by Reload.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Reload re-reads the file when its modification time moved, the
// cross-tab notification of the file-backed variant. Every repository
// read calls it first, so external edits become visible on the next
// request. It reports whether anything changed.
func (s *Store) Reload() (bool, error) {
	s.mu.Lock()

	info, err := os.Stat(s.path)
	if err != nil {
		s.mu.Unlock()
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !info.ModTime().After(s.modTime) {
		s.mu.Unlock()
		return false, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.mu.Unlock()
		return false, err
	}
	s.doc = doc
	s.modTime = info.ModTime()
	listeners := append([]func(){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return true, nil
}

// save persists the document and notifies subscribers. Callers must
// hold s.mu; notification happens after the lock is released.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return err
	}
	if info, err := os.Stat(s.path); err == nil {
		s.modTime = info.ModTime()
	}

	listeners := append([]func(){}, s.subscribers...)
	go func() {
		for _, fn := range listeners {
			fn()
		}
	}()
	return nil
}
