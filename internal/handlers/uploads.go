package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/danuarta/certificate-analyzer-api/internal/config"
	"github.com/danuarta/certificate-analyzer-api/internal/services"
	"github.com/danuarta/certificate-analyzer-api/internal/uploader"
	"github.com/danuarta/certificate-analyzer-api/internal/utils"
)

type UploadHandler struct {
	service  services.DocumentService
	uploader *uploader.Uploader
	cfg      *config.Config
	logger   *utils.Logger
}

func NewUploadHandler(service services.DocumentService, up *uploader.Uploader, cfg *config.Config, logger *utils.Logger) *UploadHandler {
	return &UploadHandler{
		service:  service,
		uploader: up,
		cfg:      cfg,
		logger:   logger,
	}
}

// UploadSingle stores one file from the "file" field and runs it through the
// analysis pipeline.
func (h *UploadHandler) UploadSingle(w http.ResponseWriter, r *http.Request) {
	// One file plus form overhead.
	limit := h.cfg.MaxFileSize + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(limit); err != nil {
		h.respondText(w, http.StatusBadRequest, "No file uploaded.")
		return
	}

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		h.respondText(w, http.StatusBadRequest, "No file uploaded.")
		return
	}

	file, err := h.uploader.Save("file", headers[0])
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.logger.Info("File uploaded",
		"filename", file.StoredFilename,
		"original", file.OriginalName,
		"content_type", file.MimeType,
		"size", file.Size)

	result, err := h.service.ProcessDocument(r.Context(), file.StoredPath)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"message":  "File analyzed successfully",
		"filename": file.StoredFilename,
		"path":     file.StoredPath,
		"result":   result,
	})
}

// UploadMultiple stores up to the configured number of files from the
// "files" field. It records the stored names and paths only; batch analysis
// is not triggered from this route.
func (h *UploadHandler) UploadMultiple(w http.ResponseWriter, r *http.Request) {
	limit := h.cfg.MaxFileSize*int64(h.cfg.MaxBatchFiles) + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(limit); err != nil {
		h.respondText(w, http.StatusBadRequest, "No files uploaded.")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		h.respondText(w, http.StatusBadRequest, "No files uploaded.")
		return
	}

	files, err := h.uploader.SaveAll("files", headers)
	if err != nil {
		h.respondError(w, err)
		return
	}

	uploaded := make([]map[string]string, 0, len(files))
	for _, file := range files {
		uploaded = append(uploaded, map[string]string{
			"filename": file.StoredFilename,
			"path":     file.StoredPath,
		})
	}

	h.logger.Info("Files uploaded", "count", len(uploaded))

	h.respondJSON(w, http.StatusOK, map[string]any{
		"message": "Files uploaded successfully",
		"files":   uploaded,
	})
}

func (h *UploadHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *UploadHandler) respondText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(message))
}

func (h *UploadHandler) respondError(w http.ResponseWriter, err error) {
	var status int
	var message string

	switch e := err.(type) {
	case *utils.AppError:
		status = e.StatusCode
		message = e.Message
	default:
		status = http.StatusInternalServerError
		message = err.Error()
	}

	h.logger.Error("Request error", "status", status, "error", message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   http.StatusText(status),
		"message": message,
	})
}
