package upload

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "slidealbum-service/app/utils/errors"
	"slidealbum-service/app/utils/logger"
)

func newTestStager(t *testing.T) (*Stager, string) {
	t.Helper()

	root := t.TempDir()
	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	stager, err := NewStager(root, testLogger)
	require.NoError(t, err)
	return stager, root
}

// buildForm assembles a parsed multipart form the way Echo hands it to the
// handler.
func buildForm(t *testing.T, fields map[string]string, fileField, fileName, content string) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form
}

func TestStager_Stage(t *testing.T) {
	stager, root := newTestStager(t)

	form := buildForm(t,
		map[string]string{"title": "q1 review", "customer": "acme"},
		"file", "deck.sal", "slide bytes")

	in, err := stager.Stage(form)
	require.NoError(t, err)

	assert.Equal(t, "q1 review", in.Title)
	assert.Equal(t, "acme", in.Customer)
	assert.Equal(t, "deck.sal", in.Staged.FileName)

	// The bytes land under the staging directory, not the customer dir.
	assert.Equal(t, filepath.Join(root, ".staging"), filepath.Dir(in.Staged.Path))
	data, err := os.ReadFile(in.Staged.Path)
	require.NoError(t, err)
	assert.Equal(t, "slide bytes", string(data))
}

func TestStager_Stage_LegacyFileField(t *testing.T) {
	stager, _ := newTestStager(t)

	form := buildForm(t,
		map[string]string{"title": "q1", "customer": "acme"},
		"files[]", "deck.sal", "slides")

	in, err := stager.Stage(form)
	require.NoError(t, err)
	assert.Equal(t, "deck.sal", in.Staged.FileName)
}

func TestStager_Stage_MissingFields(t *testing.T) {
	tests := []struct {
		name      string
		fields    map[string]string
		fileField string
		wantField string
	}{
		{
			name:      "missing title",
			fields:    map[string]string{"customer": "acme"},
			fileField: "file",
			wantField: "title",
		},
		{
			name:      "missing customer",
			fields:    map[string]string{"title": "q1"},
			fileField: "file",
			wantField: "customer",
		},
		{
			name:      "missing file",
			fields:    map[string]string{"title": "q1", "customer": "acme"},
			wantField: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stager, root := newTestStager(t)

			form := buildForm(t, tt.fields, tt.fileField, "deck.sal", "slides")
			in, err := stager.Stage(form)

			require.Error(t, err)
			assert.Nil(t, in)
			assert.Equal(t, apperrors.ErrCodeMissingField, apperrors.GetErrorCode(err))
			assert.Contains(t, err.Error(), tt.wantField)

			// A rejected request leaves the staging directory untouched.
			entries, readErr := os.ReadDir(filepath.Join(root, ".staging"))
			require.NoError(t, readErr)
			assert.Empty(t, entries)
		})
	}
}

func TestStager_Stage_StripsDirectoryFromFileName(t *testing.T) {
	stager, _ := newTestStager(t)

	form := buildForm(t,
		map[string]string{"title": "q1", "customer": "acme"},
		"file", "../../etc/passwd", "slides")

	in, err := stager.Stage(form)
	require.NoError(t, err)
	assert.Equal(t, "passwd", in.Staged.FileName)
}

func TestStager_Stage_UniqueStagingNames(t *testing.T) {
	stager, _ := newTestStager(t)

	form1 := buildForm(t, map[string]string{"title": "a", "customer": "acme"}, "file", "deck.sal", "one")
	form2 := buildForm(t, map[string]string{"title": "b", "customer": "acme"}, "file", "deck.sal", "two")

	in1, err := stager.Stage(form1)
	require.NoError(t, err)
	in2, err := stager.Stage(form2)
	require.NoError(t, err)

	assert.NotEqual(t, in1.Staged.Path, in2.Staged.Path)
}

func TestStager_Discard(t *testing.T) {
	stager, _ := newTestStager(t)

	form := buildForm(t, map[string]string{"title": "q1", "customer": "acme"}, "file", "deck.sal", "slides")
	in, err := stager.Stage(form)
	require.NoError(t, err)

	require.NoError(t, stager.Discard(in.Staged))
	assert.NoFileExists(t, in.Staged.Path)

	// Discarding twice is a no-op.
	assert.NoError(t, stager.Discard(in.Staged))
}
