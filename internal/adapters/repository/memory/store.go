// Package memory implements the repository ports in process. It backs the "memory" database
// driver, the BDD suite and service tests. Values are copied on the way in and out, so callers
// never share state with the store.
package memory

import (
	"sync"
)

// Store holds quotations, authors and sources behind a single lock so that review
// transitions are atomic with respect to every reader.
type Store struct {
	mu sync.RWMutex

	quotations map[string]*quotationRecord
	// insertion order, used as the natural fetch order
	order   []string
	authors map[string]*authorRecord
	sources map[string]*sourceRecord
	seq     int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		quotations: make(map[string]*quotationRecord),
		authors:    make(map[string]*authorRecord),
		sources:    make(map[string]*sourceRecord),
	}
}

// Quotations returns the quotation repository view of the store.
func (s *Store) Quotations() *QuotationRepository { return &QuotationRepository{store: s} }

// Authors returns the author repository view of the store.
func (s *Store) Authors() *AuthorRepository { return &AuthorRepository{store: s} }

// Sources returns the source repository view of the store.
func (s *Store) Sources() *SourceRepository { return &SourceRepository{store: s} }

// next must be called with the write lock held.
func (s *Store) next() int64 {
	s.seq++
	return s.seq
}
