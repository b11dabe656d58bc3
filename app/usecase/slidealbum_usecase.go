package usecase

import (
	"context"
	"log/slog"

	"slidealbum-service/app/domain"
	"slidealbum-service/app/port"
	apperrors "slidealbum-service/app/utils/errors"
)

// SlideAlbumUseCase implements tenant-scoped slide album operations. All
// tenant authorization happens here; the repository below it is a pure
// data structure and only ever sees customers the identity owns.
type SlideAlbumUseCase struct {
	repo   port.SlideAlbumRepository
	stager port.UploadStager
	logger *slog.Logger
}

// NewSlideAlbumUseCase creates a new SlideAlbumUseCase instance
func NewSlideAlbumUseCase(repo port.SlideAlbumRepository, stager port.UploadStager, logger *slog.Logger) *SlideAlbumUseCase {
	return &SlideAlbumUseCase{
		repo:   repo,
		stager: stager,
		logger: logger.With("component", "slidealbum_usecase"),
	}
}

var _ port.SlideAlbumUsecase = (*SlideAlbumUseCase)(nil)

// List returns the albums visible to the identity. A non-empty customer
// narrows the listing within the identity's own set; naming a customer the
// identity does not own yields an empty list, indistinguishable from an
// owned customer without albums.
func (uc *SlideAlbumUseCase) List(ctx context.Context, identity domain.Identity, customer string) ([]domain.SlideAlbum, error) {
	customers := identity.Customers
	if customer != "" {
		if !identity.HasCustomer(customer) {
			return []domain.SlideAlbum{}, nil
		}
		customers = []string{customer}
	}
	return uc.repo.List(ctx, customers)
}

// Create stages-to-commit a new album for the identity. The staged file is
// discarded on every rejection path so a failed create never leaves bytes
// under the upload root.
func (uc *SlideAlbumUseCase) Create(ctx context.Context, identity domain.Identity, title, customer string, staged domain.StagedFile) (*domain.SlideAlbum, error) {
	if title == "" {
		uc.discard(staged)
		return nil, apperrors.NewMissingField("title")
	}
	if customer == "" {
		uc.discard(staged)
		return nil, apperrors.NewMissingField("customer")
	}
	if !identity.HasCustomer(customer) {
		uc.discard(staged)
		uc.logger.Warn("create rejected for foreign customer",
			"username", identity.Username,
			"customer", customer)
		return nil, unknownCustomerErr()
	}

	album := domain.SlideAlbum{
		Title:    title,
		Customer: customer,
		FileName: staged.FileName,
	}
	if err := uc.repo.Create(ctx, album, staged); err != nil {
		return nil, err
	}
	return &album, nil
}

// Get returns the album or a not-found error whose shape is identical for
// "absent" and "customer not owned".
func (uc *SlideAlbumUseCase) Get(ctx context.Context, identity domain.Identity, title, customer string) (*domain.SlideAlbum, error) {
	if !identity.HasCustomer(customer) {
		return nil, apperrors.NewNotFound()
	}
	return uc.repo.Get(ctx, title, customer)
}

// Delete removes the album, with the same constant not-found shape as Get.
func (uc *SlideAlbumUseCase) Delete(ctx context.Context, identity domain.Identity, title, customer string) error {
	if !identity.HasCustomer(customer) {
		return apperrors.NewNotFound()
	}
	if err := uc.repo.Delete(ctx, title, customer); err != nil {
		return err
	}
	uc.logger.Info("slide album deleted",
		"username", identity.Username,
		"customer", customer,
		"title", title)
	return nil
}

func (uc *SlideAlbumUseCase) discard(staged domain.StagedFile) {
	if err := uc.stager.Discard(staged); err != nil {
		uc.logger.Warn("could not discard staged file", "path", staged.Path, "error", err)
	}
}

// unknownCustomerErr is the constant rejection for operations naming a
// customer outside the identity's set. It deliberately matches the
// not-found status so existence cannot be probed across tenants.
func unknownCustomerErr() *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeNotFound, "customer not found")
}
