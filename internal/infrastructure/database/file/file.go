package file

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/andikahilmy/marketplace-service/internal/domain"
)

// Document is the whole persisted state in flat-file mode. Every
// mutation rewrites the file; the mutex serializes writers within this
// process only.
type Document struct {
	Products      []domain.Product      `json:"products"`
	Orders        []domain.Order        `json:"orders"`
	Users         []domain.User         `json:"users"`
	WishlistItems []domain.WishlistItem `json:"wishlist_items"`
}

type Store struct {
	path string
	mu   sync.Mutex
}

func Open(path string) (*Store, error) {
	s := &Store{path: path}

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.write(&Document{}); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	// validate the existing document up front
	if _, err := s.read(); err != nil {
		return nil, err
	}

	return s, nil
}

// View runs fn against a snapshot of the document. Mutations made by fn
// are discarded.
func (s *Store) View(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	return fn(doc)
}

// Update runs fn against the document and persists the result when fn
// succeeds. On error the file is left untouched.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		return err
	}

	return s.write(doc)
}

func (s *Store) read() (*Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *Store) write(doc *Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, raw, 0644)
}
