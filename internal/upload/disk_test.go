package upload

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildForm(t *testing.T, filenames ...string) []*multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, filename := range filenames {
		part, err := writer.CreateFormFile("files", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("content of " + filename))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["files"]
}

func TestSaveNamingScheme(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewDiskStorage(dir)
	require.NoError(t, err)

	fhs := buildForm(t, "notes.pdf")
	locator, err := storage.Save(fhs[0])
	require.NoError(t, err)

	require.Regexp(t, regexp.MustCompile(`^uploads/\d+-notes\.pdf$`), locator)

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(locator, "uploads/")))
	require.NoError(t, err)
	require.Equal(t, "content of notes.pdf", string(data))
}

func TestSaveAllPreservesOrder(t *testing.T) {
	storage, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	fhs := buildForm(t, "a.pdf", "b.pdf", "c.pdf")
	locators, err := storage.SaveAll(fhs)
	require.NoError(t, err)

	require.Len(t, locators, 3)
	require.True(t, strings.HasSuffix(locators[0], "-a.pdf"))
	require.True(t, strings.HasSuffix(locators[1], "-b.pdf"))
	require.True(t, strings.HasSuffix(locators[2], "-c.pdf"))
}

func TestSaveAllEmpty(t *testing.T) {
	storage, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	locators, err := storage.SaveAll(nil)
	require.NoError(t, err)
	require.Empty(t, locators)
}

func TestSaveStripsClientDirectories(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewDiskStorage(dir)
	require.NoError(t, err)

	fhs := buildForm(t, "../../etc/passwd")
	locator, err := storage.Save(fhs[0])
	require.NoError(t, err)

	require.Regexp(t, regexp.MustCompile(`^uploads/\d+-passwd$`), locator)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
