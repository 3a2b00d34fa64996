package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/studybridge/backend/internal/domain"
	"github.com/studybridge/backend/internal/service"
)

const exploreCacheKey = "explore_submissions"

func (h *Handler) UploadSubmission(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.config.Upload.MaxMemory << 20); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var fileHeaders []*multipart.FileHeader
	if r.MultipartForm != nil {
		fileHeaders = r.MultipartForm.File["files"]
	}
	if len(fileHeaders) > h.config.Upload.MaxFiles {
		h.errorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("at most %d files per submission", h.config.Upload.MaxFiles))
		return
	}

	// whether an empty batch is acceptable is the service's call, so the
	// zero-files case goes through Ingest rather than short-circuiting here
	filePaths, err := h.storage.SaveAll(fileHeaders)
	if err != nil {
		h.internalServerError(w, r, err, "Internal Server Error")
		return
	}

	_, err = h.submissions.Ingest(
		r.FormValue("username"),
		r.FormValue("password"),
		r.FormValue("subject"),
		r.FormValue("links"),
		filePaths,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFilesProvided):
			h.errorResponse(w, r, http.StatusBadRequest, "No files uploaded")
		default:
			h.internalServerError(w, r, err, "Database Error")
		}
		return
	}

	h.invalidateExploreCache(r)

	h.writeJSON(w, r, http.StatusOK, map[string]string{"message": "Files uploaded and saved successfully"})
}

func (h *Handler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("seniorname")
	if owner == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "Senior name is required")
		return
	}

	submissions, err := h.queries.ListByOwner(owner)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSubmissions):
			h.errorResponse(w, r, http.StatusNotFound, "No files found for the specified senior")
		default:
			h.internalServerError(w, r, err, "Database Error")
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"files": submissions})
}

func (h *Handler) Explore(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	// cache-aside: any redis failure just falls through to the store
	if cached, err := h.redisClient.Get(ctx, exploreCacheKey).Bytes(); err == nil {
		var submissions []*domain.Submission
		if err := json.Unmarshal(cached, &submissions); err == nil {
			h.writeJSON(w, r, http.StatusOK, map[string]any{"files": submissions})
			return
		}
	}

	submissions, err := h.queries.ListAll()
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSubmissions):
			h.errorResponse(w, r, http.StatusNotFound, "No files found")
		default:
			h.internalServerError(w, r, err, "Database Error")
		}
		return
	}

	if data, err := json.Marshal(submissions); err == nil {
		ttl := time.Duration(h.config.Redis.ExploreCacheTTL) * time.Second
		if err := h.redisClient.Set(ctx, exploreCacheKey, data, ttl).Err(); err != nil {
			slog.Debug("explore cache set failed", "error", err)
		}
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"files": submissions})
}

func (h *Handler) invalidateExploreCache(r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if err := h.redisClient.Del(ctx, exploreCacheKey).Err(); err != nil {
		slog.Debug("explore cache invalidation failed", "error", err)
	}
}
