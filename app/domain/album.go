package domain

// SlideAlbum is a named, file-backed resource scoped to a single customer.
// The (Customer, Title) pair is unique among live albums, and an album is
// only observable once its backing file is committed on disk.
type SlideAlbum struct {
	Title    string `json:"title"`
	Customer string `json:"customer"`
	FileName string `json:"fileName"`
}

// Key returns the uniqueness key for the album.
func (a SlideAlbum) Key() AlbumKey {
	return AlbumKey{Customer: a.Customer, Title: a.Title}
}

// AlbumKey identifies an album within the store.
type AlbumKey struct {
	Customer string
	Title    string
}

// StagedFile references an uploaded file written to intermediate storage,
// pending commit into the album store.
type StagedFile struct {
	// FileName is the original uploaded file name; it becomes the album's
	// FileName on commit.
	FileName string
	// Path is the staging location on disk.
	Path string
}
