package store

import (
	"context"
	"sort"
	"sync"

	"refapi/internal/entity"
	"refapi/internal/reference"
	"refapi/internal/usecase"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// BibliographyMem keeps the working bibliography in process memory. The
// list is intentionally transient: nothing is written anywhere and a
// restart starts from an empty list.
type BibliographyMem struct {
	// the collator keeps internal buffers, so every method takes the full
	// lock rather than a read lock
	mu      sync.Mutex
	coll    *collate.Collator
	entries []entity.BibliographyEntry
}

var _ usecase.BibliographyRepository = (*BibliographyMem)(nil)

func NewBibliographyMem() *BibliographyMem {
	return &BibliographyMem{
		coll: collate.New(language.English, collate.Loose),
	}
}

func (s *BibliographyMem) Add(ctx context.Context, entry entity.BibliographyEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// List returns a sorted copy of the bibliography: alphabetical by author
// sort key, entries with equal keys keep insertion order.
func (s *BibliographyMem) List(ctx context.Context) ([]entity.BibliographyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.BibliographyEntry, len(s.entries))
	copy(out, s.entries)
	sort.SliceStable(out, func(i, j int) bool {
		ki := reference.SortKey(out[i].Reference)
		kj := reference.SortKey(out[j].Reference)
		return s.coll.CompareString(ki, kj) < 0
	})
	return out, nil
}

func (s *BibliographyMem) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return usecase.ErrNotFound
}

func (s *BibliographyMem) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
