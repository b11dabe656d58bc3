package albumfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidealbum-service/app/domain"
	apperrors "slidealbum-service/app/utils/errors"
	"slidealbum-service/app/utils/logger"
)

func newTestStore(t *testing.T, root string) *Store {
	t.Helper()

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	store, err := NewStore(root, testLogger)
	require.NoError(t, err)
	return store
}

// stageFile simulates the upload stager: a unique temp file under the root
// ready to be committed by rename.
func stageFile(t *testing.T, root, fileName, content string) domain.StagedFile {
	t.Helper()

	staging := filepath.Join(root, ".staging")
	require.NoError(t, os.MkdirAll(staging, 0o755))

	f, err := os.CreateTemp(staging, "staged-*")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	return domain.StagedFile{FileName: fileName, Path: f.Name()}
}

func TestStore_CreateGetDelete(t *testing.T) {
	root := t.TempDir()
	store := newTestStore(t, root)
	ctx := context.Background()

	album := domain.SlideAlbum{Title: "q1 review", Customer: "acme", FileName: "deck.sal"}
	staged := stageFile(t, root, "deck.sal", "slides")

	require.NoError(t, store.Create(ctx, album, staged))

	// The staged file moved into the customer directory.
	committed := filepath.Join(root, "acme", "deck.sal")
	data, err := os.ReadFile(committed)
	require.NoError(t, err)
	assert.Equal(t, "slides", string(data))
	assert.NoFileExists(t, staged.Path)

	got, err := store.Get(ctx, "q1 review", "acme")
	require.NoError(t, err)
	assert.Equal(t, album, *got)

	require.NoError(t, store.Delete(ctx, "q1 review", "acme"))
	assert.NoFileExists(t, committed)

	_, err = store.Get(ctx, "q1 review", "acme")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetErrorCode(err))

	err = store.Delete(ctx, "q1 review", "acme")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetErrorCode(err))
}

func TestStore_CreateConflictRemovesStagedFile(t *testing.T) {
	root := t.TempDir()
	store := newTestStore(t, root)
	ctx := context.Background()

	album := domain.SlideAlbum{Title: "q1", Customer: "acme", FileName: "deck.sal"}
	require.NoError(t, store.Create(ctx, album, stageFile(t, root, "deck.sal", "first")))

	loser := stageFile(t, root, "deck.sal", "second")
	err := store.Create(ctx, album, loser)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.GetErrorCode(err))
	assert.NoFileExists(t, loser.Path)

	// The committed content stays the winner's.
	data, err := os.ReadFile(filepath.Join(root, "acme", "deck.sal"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestStore_ConcurrentSameKeyCreates(t *testing.T) {
	root := t.TempDir()
	store := newTestStore(t, root)
	ctx := context.Background()

	const racers = 8
	album := domain.SlideAlbum{Title: "q1", Customer: "acme", FileName: "deck.sal"}

	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		staged := stageFile(t, root, "deck.sal", fmt.Sprintf("racer-%d", i))
		wg.Add(1)
		go func(i int, staged domain.StagedFile) {
			defer wg.Done()
			errs[i] = store.Create(ctx, album, staged)
		}(i, staged)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.Equal(t, apperrors.ErrCodeConflict, apperrors.GetErrorCode(err))
		}
	}
	assert.Equal(t, 1, successes)

	// No staged leftovers.
	entries, err := os.ReadDir(filepath.Join(root, ".staging"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_ConcurrentSharedFileNameCreates(t *testing.T) {
	root := t.TempDir()
	store := newTestStore(t, root)
	ctx := context.Background()

	// Distinct titles, one shared backing file name: exactly one create may
	// commit, and the committed bytes must be the winner's upload.
	const racers = 16
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		album := domain.SlideAlbum{
			Title:    fmt.Sprintf("title-%d", i),
			Customer: "acme",
			FileName: "deck.sal",
		}
		staged := stageFile(t, root, "deck.sal", fmt.Sprintf("upload-%d", i))
		wg.Add(1)
		go func(i int, album domain.SlideAlbum, staged domain.StagedFile) {
			defer wg.Done()
			errs[i] = store.Create(ctx, album, staged)
		}(i, album, staged)
	}
	wg.Wait()

	winner := -1
	for i, err := range errs {
		if err == nil {
			require.Equal(t, -1, winner, "more than one create committed the same file name")
			winner = i
		} else {
			assert.Equal(t, apperrors.ErrCodeConflict, apperrors.GetErrorCode(err))
		}
	}
	require.NotEqual(t, -1, winner)

	data, err := os.ReadFile(filepath.Join(root, "acme", "deck.sal"))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("upload-%d", winner), string(data))

	entries, err := os.ReadDir(filepath.Join(root, ".staging"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_IndexWriteFailureRollsBackCreate(t *testing.T) {
	root := t.TempDir()
	store := newTestStore(t, root)
	ctx := context.Background()

	// A directory where the index file belongs makes the atomic index
	// replacement fail after the backing file is already committed.
	require.NoError(t, os.Mkdir(filepath.Join(root, indexFileName), 0o755))

	album := domain.SlideAlbum{Title: "q1", Customer: "acme", FileName: "deck.sal"}
	staged := stageFile(t, root, "deck.sal", "slides")

	err := store.Create(ctx, album, staged)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeStorageError, apperrors.GetErrorCode(err))

	// Compensating cleanup: no committed file, no staged leftovers, and the
	// album is not observable.
	assert.NoFileExists(t, filepath.Join(root, "acme", "deck.sal"))
	assert.NoFileExists(t, staged.Path)
	entries, readErr := os.ReadDir(filepath.Join(root, ".staging"))
	require.NoError(t, readErr)
	assert.Empty(t, entries)

	_, err = store.Get(ctx, "q1", "acme")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetErrorCode(err))
}

func TestStore_ListFiltersAndOrders(t *testing.T) {
	root := t.TempDir()
	store := newTestStore(t, root)
	ctx := context.Background()

	for _, album := range []domain.SlideAlbum{
		{Title: "zeta", Customer: "globex", FileName: "z.sal"},
		{Title: "beta", Customer: "acme", FileName: "b.sal"},
		{Title: "alpha", Customer: "acme", FileName: "a.sal"},
		{Title: "secret", Customer: "initech", FileName: "s.sal"},
	} {
		require.NoError(t, store.Create(ctx, album, stageFile(t, root, album.FileName, album.Title)))
	}

	albums, err := store.List(ctx, []string{"acme", "globex"})
	require.NoError(t, err)

	require.Len(t, albums, 3)
	assert.Equal(t, "alpha", albums[0].Title)
	assert.Equal(t, "beta", albums[1].Title)
	assert.Equal(t, "zeta", albums[2].Title)
	for _, album := range albums {
		assert.NotEqual(t, "initech", album.Customer)
	}

	empty, err := store.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStore_IndexSurvivesReload(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	store := newTestStore(t, root)
	album := domain.SlideAlbum{Title: "q1", Customer: "acme", FileName: "deck.sal"}
	require.NoError(t, store.Create(ctx, album, stageFile(t, root, "deck.sal", "slides")))

	reopened := newTestStore(t, root)
	got, err := reopened.Get(ctx, "q1", "acme")
	require.NoError(t, err)
	assert.Equal(t, album, *got)
}

func TestStore_ReloadDropsAlbumWithMissingFile(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	store := newTestStore(t, root)
	album := domain.SlideAlbum{Title: "q1", Customer: "acme", FileName: "deck.sal"}
	require.NoError(t, store.Create(ctx, album, stageFile(t, root, "deck.sal", "slides")))

	require.NoError(t, os.Remove(filepath.Join(root, "acme", "deck.sal")))

	reopened := newTestStore(t, root)
	_, err := reopened.Get(ctx, "q1", "acme")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetErrorCode(err))
}

func TestStore_SameTitleDifferentCustomers(t *testing.T) {
	root := t.TempDir()
	store := newTestStore(t, root)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx,
		domain.SlideAlbum{Title: "q1", Customer: "acme", FileName: "deck.sal"},
		stageFile(t, root, "deck.sal", "acme slides")))
	require.NoError(t, store.Create(ctx,
		domain.SlideAlbum{Title: "q1", Customer: "globex", FileName: "deck.sal"},
		stageFile(t, root, "deck.sal", "globex slides")))

	acme, err := store.Get(ctx, "q1", "acme")
	require.NoError(t, err)
	globex, err := store.Get(ctx, "q1", "globex")
	require.NoError(t, err)
	assert.NotEqual(t, acme.Customer, globex.Customer)
}
