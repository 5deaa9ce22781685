package catalog

import (
	"errors"
	"strings"

	"bookfinder/backend/internal/model"
)

// ErrNotFound is returned when no book matches the requested id.
var ErrNotFound = errors.New("book not found")

// Store holds the fixed in-memory catalog. It is read-only after
// construction, so it is safe for concurrent use without locking.
type Store struct {
	books []model.Book
}

// NewStore creates a Store over the given records, preserving their order.
func NewStore(books []model.Book) *Store {
	return &Store{books: books}
}

// NewSeededStore creates a Store with the built-in seed catalog.
func NewSeededStore() *Store {
	return NewStore(seedBooks)
}

// ListAll returns every record in stable insertion order.
func (s *Store) ListAll() []model.Book {
	out := make([]model.Book, len(s.books))
	copy(out, s.books)
	return out
}

// FindByID returns the book with the given id, or ErrNotFound.
func (s *Store) FindByID(id int) (model.Book, error) {
	for _, book := range s.books {
		if book.ID == id {
			return book, nil
		}
	}
	return model.Book{}, ErrNotFound
}

// Search returns books whose genre, title, or author contains the term,
// case-insensitively, preserving catalog order. An empty term behaves as
// ListAll.
func (s *Store) Search(term string) []model.Book {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.ListAll()
	}

	results := make([]model.Book, 0)
	for _, book := range s.books {
		if strings.Contains(strings.ToLower(book.Genre), term) ||
			strings.Contains(strings.ToLower(book.Title), term) ||
			strings.Contains(strings.ToLower(book.Author), term) {
			results = append(results, book)
		}
	}
	return results
}
