// Package albumfs stores slide album metadata in a JSON index under the
// upload root and the backing files alongside it, one directory per
// customer. The index is rewritten atomically on every mutation so the
// store survives process restarts without ever exposing a half-committed
// album.
package albumfs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"slidealbum-service/app/domain"
	"slidealbum-service/app/port"
	apperrors "slidealbum-service/app/utils/errors"
)

const indexFileName = "albums.json"

// Store is a filesystem-backed SlideAlbumRepository.
type Store struct {
	root      string
	indexPath string
	logger    *slog.Logger

	// mu guards albums and index persistence; keyMu serializes mutations
	// per (customer, title) so unrelated keys can proceed concurrently.
	// fileMu serializes the stat-and-rename commit per (customer, file
	// name): distinct titles may still name the same backing file, and a
	// replacing rename must never land on a file another create committed.
	// Lock order is always keyMu before fileMu.
	mu     sync.RWMutex
	albums map[domain.AlbumKey]domain.SlideAlbum

	keyMuMu sync.Mutex
	keyMu   map[domain.AlbumKey]*sync.Mutex

	fileMuMu sync.Mutex
	fileMu   map[fileKey]*sync.Mutex
}

// fileKey identifies a backing file within the store.
type fileKey struct {
	customer string
	fileName string
}

// NewStore opens the store rooted at dir, creating it if needed and loading
// any previously committed index.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}

	s := &Store{
		root:      dir,
		indexPath: filepath.Join(dir, indexFileName),
		logger:    logger.With("component", "albumfs"),
		albums:    make(map[domain.AlbumKey]domain.SlideAlbum),
		keyMu:     make(map[domain.AlbumKey]*sync.Mutex),
		fileMu:    make(map[fileKey]*sync.Mutex),
	}

	if err := s.loadIndex(); err != nil {
		return nil, err
	}
	return s, nil
}

var _ port.SlideAlbumRepository = (*Store)(nil)

func (s *Store) loadIndex() error {
	data, err := os.ReadFile(s.indexPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read album index: %w", err)
	}

	var albums []domain.SlideAlbum
	if err := json.Unmarshal(data, &albums); err != nil {
		return fmt.Errorf("parse album index %s: %w", s.indexPath, err)
	}

	for _, album := range albums {
		// An album whose backing file vanished must not be observable.
		if _, err := os.Stat(s.filePath(album)); err != nil {
			s.logger.Warn("dropping album with missing backing file",
				"customer", album.Customer,
				"title", album.Title,
				"file", album.FileName)
			continue
		}
		s.albums[album.Key()] = album
	}

	s.logger.Info("album index loaded", "albums", len(s.albums))
	return nil
}

// List returns albums for the given customers, ordered by customer then
// title so responses are deterministic for a fixed store state.
func (s *Store) List(ctx context.Context, customers []string) ([]domain.SlideAlbum, error) {
	wanted := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		wanted[c] = struct{}{}
	}

	s.mu.RLock()
	result := make([]domain.SlideAlbum, 0, len(s.albums))
	for _, album := range s.albums {
		if _, ok := wanted[album.Customer]; ok {
			result = append(result, album)
		}
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Customer != result[j].Customer {
			return result[i].Customer < result[j].Customer
		}
		return result[i].Title < result[j].Title
	})
	return result, nil
}

// Get returns the album for (title, customer) or ErrNotFound.
func (s *Store) Get(ctx context.Context, title, customer string) (*domain.SlideAlbum, error) {
	s.mu.RLock()
	album, ok := s.albums[domain.AlbumKey{Customer: customer, Title: title}]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewNotFound()
	}
	return &album, nil
}

// Create commits the staged file under the customer's directory and records
// the album in the index. Exactly one of two racing creates for the same
// key succeeds; the loser gets ErrConflict and its staged file is removed.
func (s *Store) Create(ctx context.Context, album domain.SlideAlbum, staged domain.StagedFile) error {
	key := album.Key()
	lock := s.lockKey(key)
	lock.Lock()
	defer lock.Unlock()

	s.mu.RLock()
	_, exists := s.albums[key]
	s.mu.RUnlock()
	if exists {
		s.discardStaged(staged)
		return apperrors.Newf(apperrors.ErrCodeConflict,
			"slide album %q already exists for customer %q", album.Title, album.Customer)
	}

	// File commit happens outside the index lock. The key lock excludes a
	// second writer for this (customer, title); the file lock makes the
	// existence check and the rename atomic against a racing create with a
	// different title but the same file name.
	fileLock := s.lockFile(fileKey{customer: album.Customer, fileName: album.FileName})
	fileLock.Lock()
	defer fileLock.Unlock()

	finalPath := s.filePath(album)
	if _, err := os.Stat(finalPath); err == nil {
		s.discardStaged(staged)
		return apperrors.Newf(apperrors.ErrCodeConflict,
			"file %q is already in use for customer %q", album.FileName, album.Customer)
	}

	if err := os.MkdirAll(filepath.Dir(finalPath), 0o755); err != nil {
		s.discardStaged(staged)
		return apperrors.NewStorageError(err)
	}
	if err := os.Rename(staged.Path, finalPath); err != nil {
		s.discardStaged(staged)
		return apperrors.NewStorageError(fmt.Errorf("commit staged file: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.albums[key] = album
	if err := s.persistIndexLocked(); err != nil {
		// Roll back so readers never observe a half-created album.
		delete(s.albums, key)
		if rmErr := os.Remove(finalPath); rmErr != nil {
			s.logger.Error("rollback left orphaned file",
				"path", finalPath, "error", rmErr)
		}
		return apperrors.NewStorageError(err)
	}

	s.logger.Info("slide album created",
		"customer", album.Customer,
		"title", album.Title,
		"file", album.FileName)
	return nil
}

// Delete removes the album metadata and then, best effort, the backing
// file. A file that cannot be removed after the metadata is gone is logged
// as an orphan rather than surfaced as data loss.
func (s *Store) Delete(ctx context.Context, title, customer string) error {
	key := domain.AlbumKey{Customer: customer, Title: title}
	lock := s.lockKey(key)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	album, ok := s.albums[key]
	if !ok {
		s.mu.Unlock()
		return apperrors.NewNotFound()
	}

	delete(s.albums, key)
	if err := s.persistIndexLocked(); err != nil {
		// Metadata removal did not stick; restore and report.
		s.albums[key] = album
		s.mu.Unlock()
		return apperrors.NewStorageError(err)
	}
	s.mu.Unlock()

	if err := os.Remove(s.filePath(album)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("album deleted but backing file left orphaned",
			"customer", customer,
			"title", title,
			"file", album.FileName,
			"error", err)
	}

	s.logger.Info("slide album deleted", "customer", customer, "title", title)
	return nil
}

// persistIndexLocked rewrites the index atomically. Callers hold s.mu.
func (s *Store) persistIndexLocked() error {
	albums := make([]domain.SlideAlbum, 0, len(s.albums))
	for _, album := range s.albums {
		albums = append(albums, album)
	}
	sort.Slice(albums, func(i, j int) bool {
		if albums[i].Customer != albums[j].Customer {
			return albums[i].Customer < albums[j].Customer
		}
		return albums[i].Title < albums[j].Title
	})

	data, err := json.MarshalIndent(albums, "", "  ")
	if err != nil {
		return fmt.Errorf("encode album index: %w", err)
	}

	tmp, err := os.CreateTemp(s.root, "albums-*.json")
	if err != nil {
		return fmt.Errorf("create index temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write album index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close album index: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.indexPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace album index: %w", err)
	}
	return nil
}

func (s *Store) filePath(album domain.SlideAlbum) string {
	return filepath.Join(s.root, album.Customer, album.FileName)
}

func (s *Store) discardStaged(staged domain.StagedFile) {
	if err := os.Remove(staged.Path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("could not remove staged file", "path", staged.Path, "error", err)
	}
}

func (s *Store) lockKey(key domain.AlbumKey) *sync.Mutex {
	s.keyMuMu.Lock()
	defer s.keyMuMu.Unlock()
	if lock, ok := s.keyMu[key]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	s.keyMu[key] = lock
	return lock
}

func (s *Store) lockFile(key fileKey) *sync.Mutex {
	s.fileMuMu.Lock()
	defer s.fileMuMu.Unlock()
	if lock, ok := s.fileMu[key]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	s.fileMu[key] = lock
	return lock
}
