package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var submissionFields = map[string]string{
	"username": "Alice",
	"password": "pw123",
	"subject":  "Math",
	"links":    "http://x",
}

func TestUploadSubmission(t *testing.T) {
	env := newTestEnv(t)

	rec := env.uploadFiles(t, submissionFields, "a.pdf", "b.pdf")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Files uploaded and saved successfully", decodeBody(t, rec)["message"])

	require.Len(t, env.submissions.created, 1)
	created := env.submissions.created[0]
	require.Equal(t, "Alice", created.Username)
	require.Equal(t, "Math", created.Subject)
	require.Len(t, created.FilePaths, 2)
	require.True(t, strings.HasSuffix(created.FilePaths[0], "-a.pdf"))
	require.True(t, strings.HasSuffix(created.FilePaths[1], "-b.pdf"))
}

func TestUploadSubmissionNoFiles(t *testing.T) {
	env := newTestEnv(t)

	rec := env.uploadFiles(t, submissionFields)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "No files uploaded", decodeBody(t, rec)["error"])
	require.Empty(t, env.submissions.created)
}

func TestUploadSubmissionTooManyFiles(t *testing.T) {
	env := newTestEnv(t)

	filenames := make([]string, 11)
	for i := range filenames {
		filenames[i] = "file.pdf"
	}

	rec := env.uploadFiles(t, submissionFields, filenames...)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, env.submissions.created)
}

func TestListByOwner(t *testing.T) {
	env := newTestEnv(t)

	rec := env.uploadFiles(t, submissionFields, "a.pdf", "b.pdf")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.get(t, "/Jrdashboard?seniorname=Alice")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	files, ok := body["files"].([]any)
	require.True(t, ok)
	require.Len(t, files, 1)

	submission := files[0].(map[string]any)
	filePaths := submission["filePaths"].([]any)
	require.Len(t, filePaths, 2)
	require.True(t, strings.HasPrefix(filePaths[0].(string), "http://localhost:3000/uploads/"))
	require.True(t, strings.HasSuffix(filePaths[0].(string), "-a.pdf"))
	require.True(t, strings.HasSuffix(filePaths[1].(string), "-b.pdf"))

	// the stored plaintext password never appears in listings
	require.NotContains(t, rec.Body.String(), "pw123")
}

func TestListByOwnerMissingParam(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/Jrdashboard")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Senior name is required", decodeBody(t, rec)["error"])
}

func TestListByOwnerNoneFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/Jrdashboard?seniorname=Nobody")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "No files found for the specified senior", decodeBody(t, rec)["error"])
}

func TestExplore(t *testing.T) {
	env := newTestEnv(t)

	rec := env.uploadFiles(t, submissionFields, "a.pdf")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.get(t, "/explore")
	require.Equal(t, http.StatusOK, rec.Code)

	files := decodeBody(t, rec)["files"].([]any)
	require.Len(t, files, 1)

	// with redis unreachable the cache degrades to a direct store read,
	// so a second call still answers
	rec = env.get(t, "/explore")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestExploreEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/explore")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "No files found", decodeBody(t, rec)["error"])
}

func TestStaticUploadServing(t *testing.T) {
	env := newTestEnv(t)

	rec := env.uploadFiles(t, submissionFields, "a.pdf")
	require.Equal(t, http.StatusOK, rec.Code)

	locator := env.submissions.created[0].FilePaths[0]
	rec = env.get(t, "/"+locator)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "content of a.pdf", rec.Body.String())
}
