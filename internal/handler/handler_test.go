package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/studybridge/backend/internal/config"
	"github.com/studybridge/backend/internal/domain"
	"github.com/studybridge/backend/internal/repository"
	"github.com/studybridge/backend/internal/service"
	"github.com/studybridge/backend/internal/upload"
)

// -------- test fakes --------

type fakeAccountStore struct {
	accounts map[string]*domain.Account
	nextID   int64
}

func (f *fakeAccountStore) GetAccountByEmail(email string) (*domain.Account, error) {
	if account, ok := f.accounts[email]; ok {
		return account, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeAccountStore) CheckEmailIfExists(email string) (bool, error) {
	_, ok := f.accounts[email]
	return ok, nil
}

func (f *fakeAccountStore) CreateAccount(account *domain.Account) error {
	if _, ok := f.accounts[account.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	f.nextID++
	account.ID = f.nextID
	account.CreatedAt = time.Now()
	f.accounts[account.Email] = account
	return nil
}

type fakeSubmissionStore struct {
	created []*domain.Submission
	nextID  int64
}

func (f *fakeSubmissionStore) CreateSubmission(submission *domain.Submission) error {
	f.nextID++
	submission.ID = f.nextID
	submission.CreatedAt = time.Now()
	f.created = append(f.created, submission)
	return nil
}

func (f *fakeSubmissionStore) GetSubmissionsByOwner(username string) ([]*domain.Submission, error) {
	matched := make([]*domain.Submission, 0)
	for _, submission := range f.created {
		if submission.Username == username {
			matched = append(matched, submission)
		}
	}
	return matched, nil
}

func (f *fakeSubmissionStore) GetAllSubmissions() ([]*domain.Submission, error) {
	return f.created, nil
}

type fakePublisher struct {
	published [][]byte
	err       error
}

func (f *fakePublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg.Body)
	return nil
}

// -------- helpers --------

type testEnv struct {
	handler     *Handler
	accounts    *fakeAccountStore
	submissions *fakeSubmissionStore
	publisher   *fakePublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.BaseURL = "http://localhost:3000"
	cfg.Server.CORSOrigin = "http://localhost:3001"
	cfg.Upload.Dir = t.TempDir()
	cfg.Upload.MaxFiles = 10
	cfg.Upload.MaxMemory = 32
	cfg.RabbitMQ.PublishTimeout = 1
	cfg.Redis.OperationTimeout = 1
	cfg.Redis.ExploreCacheTTL = 1

	accounts := &fakeAccountStore{accounts: make(map[string]*domain.Account)}
	submissions := &fakeSubmissionStore{}
	publisher := &fakePublisher{}

	storage, err := upload.NewDiskStorage(cfg.Upload.Dir)
	require.NoError(t, err)

	// an unreachable redis exercises the cache-degrades-to-store path
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})

	h, err := NewHandler(
		cfg,
		service.NewCredentialService(accounts),
		service.NewSubmissionService(submissions),
		service.NewQueryService(submissions, cfg.Server.BaseURL),
		storage,
		publisher,
		rdb,
	)
	require.NoError(t, err)
	h.RegisterRoutes()

	return &testEnv{
		handler:     h,
		accounts:    accounts,
		submissions: submissions,
		publisher:   publisher,
	}
}

func (env *testEnv) postJSON(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.handler.Mux.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	env.handler.Mux.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) uploadFiles(t *testing.T, fields map[string]string, filenames ...string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, filename := range filenames {
		part, err := writer.CreateFormFile("files", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("content of " + filename))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/SrDashboard", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	env.handler.Mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
