package port

//go:generate mockgen -source=upload_port.go -destination=../mocks/mock_upload_port.go -package=mocks

import (
	"mime/multipart"

	"slidealbum-service/app/domain"
)

// CreateAlbumInput is the validated result of parsing a multipart create
// request.
type CreateAlbumInput struct {
	Title    string
	Customer string
	Staged   domain.StagedFile
}

// UploadStager parses multipart payloads and writes the file part to a
// staging location under the upload root.
type UploadStager interface {
	// Stage extracts the required fields and stages the file. A missing
	// field yields an invalid-request error naming it. The staged file must
	// be either committed by the repository or discarded.
	Stage(form *multipart.Form) (*CreateAlbumInput, error)

	// Discard removes a staged file that will not be committed.
	Discard(staged domain.StagedFile) error
}
