package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logvault/logvault/internal/apperr"
	"github.com/logvault/logvault/internal/model"
	"github.com/logvault/logvault/internal/service"
)

type fakeLogAPI struct {
	ingestID  uuid.UUID
	ingestErr error
	lastIn    service.IngestInput

	records []model.LogRecord
	counts  []model.LevelCount
	listErr error

	url    string
	urlErr error
}

func (f *fakeLogAPI) Ingest(_ context.Context, in service.IngestInput) (uuid.UUID, error) {
	f.lastIn = in
	return f.ingestID, f.ingestErr
}

func (f *fakeLogAPI) List(_ context.Context, _, _, _ string) ([]model.LogRecord, error) {
	return f.records, f.listErr
}

func (f *fakeLogAPI) LevelCounts(_ context.Context, _ string) ([]model.LevelCount, error) {
	return f.counts, f.listErr
}

func (f *fakeLogAPI) AccessURL(_ context.Context, _ uuid.UUID) (string, error) {
	return f.url, f.urlErr
}

func (f *fakeLogAPI) DownloadURL(_ context.Context, _ uuid.UUID) (string, error) {
	return f.url, f.urlErr
}

func newUploadRequest(t *testing.T, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-log", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUpload(t *testing.T) {
	e := echo.New()

	t.Run("success returns log id", func(t *testing.T) {
		api := &fakeLogAPI{ingestID: uuid.New()}
		h := &LogHandler{Logs: api}

		req := newUploadRequest(t, map[string]string{"level": "info", "owner": "client_user"}, "app.json", []byte(`{"a":1}`))
		rec := httptest.NewRecorder()
		require.NoError(t, h.Upload(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, api.ingestID.String(), body["log_id"])
		assert.Equal(t, "info", api.lastIn.Level)
		assert.Equal(t, "client_user", api.lastIn.Owner)
		assert.Equal(t, "app.json", api.lastIn.Filename)
	})

	t.Run("missing file part is 400", func(t *testing.T) {
		h := &LogHandler{Logs: &fakeLogAPI{}}
		req := newUploadRequest(t, map[string]string{"level": "info", "owner": "u"}, "", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h.Upload(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		api := &fakeLogAPI{ingestErr: fmt.Errorf("invalid log level: %w", apperr.ErrValidation)}
		h := &LogHandler{Logs: api}
		req := newUploadRequest(t, map[string]string{"level": "bogus", "owner": "u"}, "a.json", []byte("x"))
		rec := httptest.NewRecorder()
		require.NoError(t, h.Upload(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("storage error maps to 500", func(t *testing.T) {
		api := &fakeLogAPI{ingestErr: fmt.Errorf("put: %w", apperr.ErrStorage)}
		h := &LogHandler{Logs: api}
		req := newUploadRequest(t, map[string]string{"level": "info", "owner": "u"}, "a.json", []byte("x"))
		rec := httptest.NewRecorder()
		require.NoError(t, h.Upload(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestListLogs(t *testing.T) {
	e := echo.New()

	t.Run("missing user is 400", func(t *testing.T) {
		h := &LogHandler{Logs: &fakeLogAPI{}}
		req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h.List(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		h := &LogHandler{Logs: &fakeLogAPI{}}
		req := httptest.NewRequest(http.MethodGet, "/api/logs?user=client_user", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h.List(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("records serialize with timestamp field", func(t *testing.T) {
		id := uuid.New()
		h := &LogHandler{Logs: &fakeLogAPI{records: []model.LogRecord{{
			ID:        id,
			Filename:  "a.json",
			Level:     model.LevelInfo,
			Owner:     "client_user",
			CreatedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		}}}}
		req := httptest.NewRequest(http.MethodGet, "/api/logs?user=client_user", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h.List(e.NewContext(req, rec)))

		var got []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, id.String(), got[0]["id"])
		assert.Equal(t, "INFO", got[0]["level"])
		assert.Contains(t, got[0], "timestamp")
		assert.NotContains(t, got[0], "storage_key")
	})
}

func TestStats(t *testing.T) {
	e := echo.New()
	h := &LogHandler{Logs: &fakeLogAPI{counts: []model.LevelCount{
		{Level: model.LevelInfo, Count: 3},
		{Level: model.LevelError, Count: 1},
	}}}

	req := httptest.NewRequest(http.MethodGet, "/api/stats?user=admin", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Stats(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"INFO","value":3},{"name":"ERROR","value":1}]`, rec.Body.String())
}

func TestViewAndDownload(t *testing.T) {
	e := echo.New()

	newCtx := func(path, id string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		return c, rec
	}

	t.Run("view returns url", func(t *testing.T) {
		h := &LogHandler{Logs: &fakeLogAPI{url: "https://blobs.test/x"}}
		c, rec := newCtx("/api/view-log/:id", uuid.New().String())
		require.NoError(t, h.View(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"url":"https://blobs.test/x"}`, rec.Body.String())
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		h := &LogHandler{Logs: &fakeLogAPI{urlErr: fmt.Errorf("log: %w", apperr.ErrNotFound)}}
		c, rec := newCtx("/api/download-log/:id", uuid.New().String())
		require.NoError(t, h.Download(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		h := &LogHandler{Logs: &fakeLogAPI{}}
		c, rec := newCtx("/api/view-log/:id", "not-a-uuid")
		require.NoError(t, h.View(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
