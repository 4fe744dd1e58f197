package uploads

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader by encoding and re-parsing
// a form, the same way a handler would receive it.
func fileHeader(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="resume"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["resume"]
	require.Len(t, files, 1)
	return files[0]
}

func TestDiskStoreSave(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Save(fileHeader(t, "resume.pdf", "application/pdf", "%PDF-1.4 fake"))
	require.NoError(t, err)

	assert.Equal(t, "resume.pdf", ref.OriginalName)
	assert.Equal(t, "application/pdf", ref.MimeType)
	assert.Equal(t, int64(len("%PDF-1.4 fake")), ref.Size)
	assert.Equal(t, ".pdf", filepath.Ext(ref.Path))

	data, err := os.ReadFile(ref.Path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
}

func TestDiskStoreUniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(fileHeader(t, "resume.pdf", "application/pdf", "one"))
	require.NoError(t, err)
	second, err := store.Save(fileHeader(t, "resume.pdf", "application/pdf", "two"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path,
		"same original filename must not collide on disk")
	assert.Equal(t, first.OriginalName, second.OriginalName)
}

func TestNewDiskStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewDiskStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
