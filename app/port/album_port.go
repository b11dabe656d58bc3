package port

//go:generate mockgen -source=album_port.go -destination=../mocks/mock_album_port.go -package=mocks

import (
	"context"

	"slidealbum-service/app/domain"
)

// SlideAlbumUsecase defines the tenant-scoped slide album operations exposed
// to the transport layer. Tenant authorization happens here, not in the
// repository: the usecase only ever passes customers the identity owns.
type SlideAlbumUsecase interface {
	List(ctx context.Context, identity domain.Identity, customer string) ([]domain.SlideAlbum, error)
	Create(ctx context.Context, identity domain.Identity, title, customer string, staged domain.StagedFile) (*domain.SlideAlbum, error)
	Get(ctx context.Context, identity domain.Identity, title, customer string) (*domain.SlideAlbum, error)
	Delete(ctx context.Context, identity domain.Identity, title, customer string) error
}

// SlideAlbumRepository is a pure tenant-scoped store of albums and their
// backing files. It performs no authorization.
type SlideAlbumRepository interface {
	// List returns albums whose customer is in the given set, ordered by
	// customer then title.
	List(ctx context.Context, customers []string) ([]domain.SlideAlbum, error)

	// Create commits the staged file and records the album. A duplicate
	// (customer, title) yields ErrConflict and removes the staged file; no
	// half-created album is ever observable.
	Create(ctx context.Context, album domain.SlideAlbum, staged domain.StagedFile) error

	// Get returns the album or ErrNotFound.
	Get(ctx context.Context, title, customer string) (*domain.SlideAlbum, error)

	// Delete removes the album metadata and, best effort, its backing file.
	// Returns ErrNotFound if the pair does not exist.
	Delete(ctx context.Context, title, customer string) error
}
