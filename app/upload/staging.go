// Package upload parses multipart create requests and stages the uploaded
// file under the upload root until the album store commits it.
package upload

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"slidealbum-service/app/domain"
	"slidealbum-service/app/port"
	apperrors "slidealbum-service/app/utils/errors"
)

// Multipart field names. "files[]" is the file field name the original
// web client sends; "file" is the canonical one.
const (
	fieldTitle      = "title"
	fieldCustomer   = "customer"
	fieldFile       = "file"
	fieldFileLegacy = "files[]"

	stagingDirName = ".staging"
)

// Stager writes uploaded files into a staging directory with unique names,
// so concurrent uploads of identically named files never touch each other.
type Stager struct {
	stagingDir string
	logger     *slog.Logger
}

// NewStager creates the staging directory under the upload root.
func NewStager(uploadRoot string, logger *slog.Logger) (*Stager, error) {
	dir := filepath.Join(uploadRoot, stagingDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	return &Stager{
		stagingDir: dir,
		logger:     logger.With("component", "upload"),
	}, nil
}

var _ port.UploadStager = (*Stager)(nil)

// Stage validates the multipart form and writes the file part to staging.
// All required fields are checked before any bytes are written, so a
// rejected request leaves the staging directory untouched.
func (s *Stager) Stage(form *multipart.Form) (*port.CreateAlbumInput, error) {
	title := firstValue(form, fieldTitle)
	customer := firstValue(form, fieldCustomer)
	fileHeader := firstFile(form, fieldFile, fieldFileLegacy)

	switch {
	case title == "":
		return nil, apperrors.NewMissingField(fieldTitle)
	case customer == "":
		return nil, apperrors.NewMissingField(fieldCustomer)
	case fileHeader == nil:
		return nil, apperrors.NewMissingField(fieldFile)
	}

	fileName := filepath.Base(fileHeader.Filename)
	if fileName == "" || fileName == "." || fileName == string(filepath.Separator) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "uploaded file has no usable name")
	}

	staged, err := s.writeStaged(fileHeader, fileName)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("file staged",
		"customer", customer,
		"title", title,
		"file", fileName,
		"path", staged.Path)

	return &port.CreateAlbumInput{
		Title:    title,
		Customer: customer,
		Staged:   *staged,
	}, nil
}

// Discard removes a staged file that will not be committed.
func (s *Stager) Discard(staged domain.StagedFile) error {
	if err := os.Remove(staged.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("discard staged file: %w", err)
	}
	return nil
}

func (s *Stager) writeStaged(header *multipart.FileHeader, fileName string) (*domain.StagedFile, error) {
	src, err := header.Open()
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("open uploaded file: %w", err))
	}
	defer src.Close()

	// Unique intermediate name; the original file name only matters at
	// commit time.
	path := filepath.Join(s.stagingDir, uuid.NewString())
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("create staged file: %w", err))
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return nil, apperrors.NewInternalError(fmt.Errorf("write staged file: %w", err))
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return nil, apperrors.NewInternalError(fmt.Errorf("close staged file: %w", err))
	}

	return &domain.StagedFile{FileName: fileName, Path: path}, nil
}

func firstValue(form *multipart.Form, field string) string {
	if form == nil {
		return ""
	}
	values := form.Value[field]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func firstFile(form *multipart.Form, fields ...string) *multipart.FileHeader {
	if form == nil {
		return nil
	}
	for _, field := range fields {
		if files := form.File[field]; len(files) > 0 {
			return files[0]
		}
	}
	return nil
}
