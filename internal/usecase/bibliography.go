package usecase

import (
	"context"
	"errors"

	"refapi/internal/entity"
)

// ErrNotFound is returned when a bibliography entry does not exist.
var ErrNotFound = errors.New("bibliography entry not found")

// BibliographyRepository is the contract for the transient working
// bibliography. List always returns entries alphabetised A-Z by author
// sort key.
type BibliographyRepository interface {
	Add(ctx context.Context, entry entity.BibliographyEntry) error
	List(ctx context.Context) ([]entity.BibliographyEntry, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
