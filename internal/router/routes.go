package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/danuarta/certificate-analyzer-api/internal/handlers"
	"github.com/danuarta/certificate-analyzer-api/internal/middleware"
	"github.com/danuarta/certificate-analyzer-api/internal/utils"
)

func NewRouter(uploadHandler *handlers.UploadHandler, logger *utils.Logger) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Recovery(logger))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	// Upload endpoints
	r.HandleFunc("/upload-single", uploadHandler.UploadSingle).Methods(http.MethodPost)
	r.HandleFunc("/upload-multiple", uploadHandler.UploadMultiple).Methods(http.MethodPost)

	return r
}
