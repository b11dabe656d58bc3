package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"slidealbum-service/app/domain"
	"slidealbum-service/app/port"
	apperrors "slidealbum-service/app/utils/errors"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// AlbumRepository stores slide album metadata in PostgreSQL while the
// backing files stay on the filesystem under the upload root. The unique
// constraint on (customer, title) arbitrates racing creates across
// processes; within the process, keyed mutexes serialize the file commit
// so a replacing rename never lands on a file another create committed.
type AlbumRepository struct {
	db     DatabaseIface
	root   string
	logger *slog.Logger

	// keyMu serializes creates per (customer, title); fileMu serializes
	// the stat-and-rename commit per (customer, file name). Lock order is
	// always keyMu before fileMu.
	keyMuMu sync.Mutex
	keyMu   map[domain.AlbumKey]*sync.Mutex

	fileMuMu sync.Mutex
	fileMu   map[fileKey]*sync.Mutex
}

// fileKey identifies a backing file under the upload root.
type fileKey struct {
	customer string
	fileName string
}

// NewAlbumRepository creates a new PostgreSQL album repository
func NewAlbumRepository(db DatabaseIface, uploadRoot string, logger *slog.Logger) *AlbumRepository {
	return &AlbumRepository{
		db:     db,
		root:   uploadRoot,
		logger: logger.With("component", "album_repository"),
		keyMu:  make(map[domain.AlbumKey]*sync.Mutex),
		fileMu: make(map[fileKey]*sync.Mutex),
	}
}

var _ port.SlideAlbumRepository = (*AlbumRepository)(nil)

// EnsureSchema creates the slide_albums table if it does not exist.
func (r *AlbumRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS slide_albums (
			customer  TEXT NOT NULL,
			title     TEXT NOT NULL,
			file_name TEXT NOT NULL,
			PRIMARY KEY (customer, title)
		)`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure slide_albums schema: %w", err)
	}
	return nil
}

// List returns albums whose customer is in the given set, ordered by
// customer then title.
func (r *AlbumRepository) List(ctx context.Context, customers []string) ([]domain.SlideAlbum, error) {
	query := `
		SELECT customer, title, file_name
		FROM slide_albums
		WHERE customer = ANY($1)
		ORDER BY customer, title`

	rows, err := r.db.Query(ctx, query, customers)
	if err != nil {
		r.logger.Error("failed to list albums", "error", err)
		return nil, apperrors.NewStorageError(err)
	}
	defer rows.Close()

	albums := make([]domain.SlideAlbum, 0)
	for rows.Next() {
		var album domain.SlideAlbum
		if err := rows.Scan(&album.Customer, &album.Title, &album.FileName); err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		albums = append(albums, album)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return albums, nil
}

// Get retrieves an album by (title, customer)
func (r *AlbumRepository) Get(ctx context.Context, title, customer string) (*domain.SlideAlbum, error) {
	query := `
		SELECT customer, title, file_name
		FROM slide_albums
		WHERE customer = $1 AND title = $2`

	var album domain.SlideAlbum
	err := r.db.QueryRow(ctx, query, customer, title).Scan(
		&album.Customer,
		&album.Title,
		&album.FileName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound()
		}
		r.logger.Error("failed to get album", "customer", customer, "title", title, "error", err)
		return nil, apperrors.NewStorageError(err)
	}
	return &album, nil
}

// Create commits the staged file and inserts the metadata row. The file is
// committed first so a row never refers to a file that is not durably on
// disk; an insert failure rolls the file back.
func (r *AlbumRepository) Create(ctx context.Context, album domain.SlideAlbum, staged domain.StagedFile) error {
	keyLock := r.lockKey(album.Key())
	keyLock.Lock()
	defer keyLock.Unlock()

	fileLock := r.lockFile(fileKey{customer: album.Customer, fileName: album.FileName})
	fileLock.Lock()
	defer fileLock.Unlock()

	finalPath := filepath.Join(r.root, album.Customer, album.FileName)
	if _, err := os.Stat(finalPath); err == nil {
		r.discardStaged(staged)
		return apperrors.Newf(apperrors.ErrCodeConflict,
			"file %q is already in use for customer %q", album.FileName, album.Customer)
	}

	if err := os.MkdirAll(filepath.Dir(finalPath), 0o755); err != nil {
		r.discardStaged(staged)
		return apperrors.NewStorageError(err)
	}
	if err := os.Rename(staged.Path, finalPath); err != nil {
		r.discardStaged(staged)
		return apperrors.NewStorageError(fmt.Errorf("commit staged file: %w", err))
	}

	query := `
		INSERT INTO slide_albums (customer, title, file_name)
		VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, album.Customer, album.Title, album.FileName); err != nil {
		// The file lock guarantees finalPath is this call's own rename
		// result, so removing it cannot destroy another create's commit.
		if rmErr := os.Remove(finalPath); rmErr != nil {
			r.logger.Error("rollback left orphaned file", "path", finalPath, "error", rmErr)
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.Newf(apperrors.ErrCodeConflict,
				"slide album %q already exists for customer %q", album.Title, album.Customer)
		}
		r.logger.Error("failed to insert album", "customer", album.Customer, "title", album.Title, "error", err)
		return apperrors.NewStorageError(err)
	}

	r.logger.Info("slide album created",
		"customer", album.Customer,
		"title", album.Title,
		"file", album.FileName)
	return nil
}

// Delete removes the metadata row and, best effort, the backing file.
func (r *AlbumRepository) Delete(ctx context.Context, title, customer string) error {
	query := `
		DELETE FROM slide_albums
		WHERE customer = $1 AND title = $2
		RETURNING file_name`

	var fileName string
	err := r.db.QueryRow(ctx, query, customer, title).Scan(&fileName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound()
		}
		r.logger.Error("failed to delete album", "customer", customer, "title", title, "error", err)
		return apperrors.NewStorageError(err)
	}

	filePath := filepath.Join(r.root, customer, fileName)
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		r.logger.Warn("album deleted but backing file left orphaned",
			"customer", customer,
			"title", title,
			"file", fileName,
			"error", err)
	}

	r.logger.Info("slide album deleted", "customer", customer, "title", title)
	return nil
}

func (r *AlbumRepository) lockKey(key domain.AlbumKey) *sync.Mutex {
	r.keyMuMu.Lock()
	defer r.keyMuMu.Unlock()
	if lock, ok := r.keyMu[key]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	r.keyMu[key] = lock
	return lock
}

func (r *AlbumRepository) lockFile(key fileKey) *sync.Mutex {
	r.fileMuMu.Lock()
	defer r.fileMuMu.Unlock()
	if lock, ok := r.fileMu[key]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	r.fileMu[key] = lock
	return lock
}

func (r *AlbumRepository) discardStaged(staged domain.StagedFile) {
	if err := os.Remove(staged.Path); err != nil && !os.IsNotExist(err) {
		r.logger.Warn("could not remove staged file", "path", staged.Path, "error", err)
	}
}
