package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/logvault/logvault/internal/apperr"
	"github.com/logvault/logvault/internal/model"
	"github.com/logvault/logvault/internal/response"
	"github.com/logvault/logvault/internal/service"
)

// LogAPI is the ingestion/query surface the handler needs.
type LogAPI interface {
	Ingest(ctx context.Context, in service.IngestInput) (uuid.UUID, error)
	List(ctx context.Context, identity, levelFilter, search string) ([]model.LogRecord, error)
	LevelCounts(ctx context.Context, identity string) ([]model.LevelCount, error)
	AccessURL(ctx context.Context, id uuid.UUID) (string, error)
	DownloadURL(ctx context.Context, id uuid.UUID) (string, error)
}

// LogHandler handles the /api log routes.
type LogHandler struct {
	Logs LogAPI
}

// Upload ingests a multipart log artifact (POST /api/upload-log).
func (h *LogHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "missing file", err.Error())
	}
	src, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "unreadable file", err.Error())
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return response.BadRequest(c, "unreadable file", err.Error())
	}

	id, err := h.Logs.Ingest(c.Request().Context(), service.IngestInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		Level:       c.FormValue("level"),
		Owner:       c.FormValue("owner"),
	})
	if err != nil {
		return writeError(c, "upload failed", err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"log_id":  id.String(),
	})
}

// List returns records visible to the caller (GET /api/logs?user=&level=&search=).
func (h *LogHandler) List(c echo.Context) error {
	user := c.QueryParam("user")
	if user == "" {
		return response.BadRequest(c, "missing user", "query param user is required")
	}

	records, err := h.Logs.List(c.Request().Context(), user, c.QueryParam("level"), c.QueryParam("search"))
	if err != nil {
		return writeError(c, "list logs failed", err)
	}
	if records == nil {
		records = []model.LogRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

// Stats returns per-level counts scoped to the caller (GET /api/stats?user=).
func (h *LogHandler) Stats(c echo.Context) error {
	user := c.QueryParam("user")
	if user == "" {
		return response.BadRequest(c, "missing user", "query param user is required")
	}

	counts, err := h.Logs.LevelCounts(c.Request().Context(), user)
	if err != nil {
		return writeError(c, "stats failed", err)
	}
	if counts == nil {
		counts = []model.LevelCount{}
	}
	return c.JSON(http.StatusOK, counts)
}

// View returns a presigned URL for inline access (GET /api/view-log/:id).
func (h *LogHandler) View(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, "invalid log id", err)
	}
	url, err := h.Logs.AccessURL(c.Request().Context(), id)
	if err != nil {
		return writeError(c, "view log failed", err)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

// Download returns a presigned URL with attachment disposition (GET /api/download-log/:id).
func (h *LogHandler) Download(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, "invalid log id", err)
	}
	url, err := h.Logs.DownloadURL(c.Request().Context(), id)
	if err != nil {
		return writeError(c, "download log failed", err)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%v: %w", err, apperr.ErrValidation)
	}
	return id, nil
}
