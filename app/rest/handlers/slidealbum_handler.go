package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"slidealbum-service/app/port"
	custommw "slidealbum-service/app/rest/middleware"
	apperrors "slidealbum-service/app/utils/errors"
)

// SlideAlbumHandler handles slide album HTTP requests. It also serves the
// committed album files, scoped to the caller's customers.
type SlideAlbumHandler struct {
	albumUsecase port.SlideAlbumUsecase
	stager       port.UploadStager
	uploadRoot   string
	logger       *slog.Logger
}

// NewSlideAlbumHandler creates a new slide album handler
func NewSlideAlbumHandler(albumUsecase port.SlideAlbumUsecase, stager port.UploadStager, uploadRoot string, logger *slog.Logger) *SlideAlbumHandler {
	return &SlideAlbumHandler{
		albumUsecase: albumUsecase,
		stager:       stager,
		uploadRoot:   uploadRoot,
		logger:       logger.With("component", "slidealbum_handler"),
	}
}

// ListResponse wraps the album listing.
type ListResponse struct {
	SlideAlbums interface{} `json:"slideAlbums"`
}

// AlbumResponse wraps a single album.
type AlbumResponse struct {
	SlideAlbum interface{} `json:"slideAlbum"`
}

// List returns the albums visible to the caller, optionally narrowed by the
// customer query parameter.
func (h *SlideAlbumHandler) List(c echo.Context) error {
	identity, ok := custommw.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	albums, err := h.albumUsecase.List(c.Request().Context(), identity, c.QueryParam("customer"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ListResponse{SlideAlbums: albums})
}

// Create accepts a multipart form with title, customer and one file part,
// stages the file and commits the album.
func (h *SlideAlbumHandler) Create(c echo.Context) error {
	identity, ok := custommw.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	form, err := c.MultipartForm()
	if err != nil {
		return apperrors.ErrInvalidRequest.WithDetails("multipart form data required")
	}

	in, err := h.stager.Stage(form)
	if err != nil {
		return err
	}

	album, err := h.albumUsecase.Create(c.Request().Context(), identity, in.Title, in.Customer, in.Staged)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, AlbumResponse{SlideAlbum: album})
}

// Get returns one album by customer and title.
func (h *SlideAlbumHandler) Get(c echo.Context) error {
	identity, ok := custommw.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	customer := pathParam(c, "customer")
	title := pathParam(c, "title")
	album, err := h.albumUsecase.Get(c.Request().Context(), identity, title, customer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, AlbumResponse{SlideAlbum: album})
}

// Delete removes one album by customer and title.
func (h *SlideAlbumHandler) Delete(c echo.Context) error {
	identity, ok := custommw.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	customer := pathParam(c, "customer")
	title := pathParam(c, "title")
	if err := h.albumUsecase.Delete(c.Request().Context(), identity, title, customer); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ServeFile serves a committed album file. Only customers in the caller's
// set are reachable; everything else is a constant not-found.
func (h *SlideAlbumHandler) ServeFile(c echo.Context) error {
	identity, ok := custommw.IdentityFrom(c)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	customer := pathParam(c, "customer")
	if !identity.HasCustomer(customer) {
		return apperrors.NewNotFound()
	}

	name, err := url.PathUnescape(c.Param("*"))
	if err != nil || name == "" {
		return apperrors.NewNotFound()
	}
	name = filepath.Clean(name)
	if name == "." || strings.HasPrefix(name, "..") || filepath.IsAbs(name) {
		return apperrors.NewNotFound()
	}

	if err := c.File(filepath.Join(h.uploadRoot, customer, name)); err != nil {
		// Keep the constant not-found shape for missing files too.
		if errors.Is(err, echo.ErrNotFound) {
			return apperrors.NewNotFound()
		}
		return err
	}
	return nil
}

// pathParam returns the decoded path parameter; a value that cannot be
// decoded is used raw.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
