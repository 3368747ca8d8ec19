package handlers

import (
	"log"
	"net/http"

	"phlegm-site/internal/models"
	"phlegm-site/internal/services"
)

const defaultMediaFolder = "phleghm-website"

// MediaHandler bridges the admin UI to the object-storage API. The storage
// client is nil when the credential set is missing, which every request
// reports as a configuration error rather than a transient failure.
type MediaHandler struct {
	storage *services.StorageClient
}

func NewMediaHandler(storage *services.StorageClient) *MediaHandler {
	return &MediaHandler{storage: storage}
}

func (h *MediaHandler) storageReady(w http.ResponseWriter) bool {
	if h.storage == nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "storage_not_configured", "Object storage is not configured")
		return false
	}
	return true
}

// Upload stores one file and returns its public CDN URL.
// @Tags Media
// @Summary Upload media file
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param folder formData string false "Destination folder"
// @Success 200 {object} services.UploadResult
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/media/upload [post]
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !h.storageReady(w) {
		return
	}

	const maxMemory = 32 << 20
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "No file provided")
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")
	if folder == "" {
		folder = defaultMediaFolder
	}

	result, err := h.storage.Upload(r.Context(), folder, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		log.Printf("Failed to upload %s: %v", header.Filename, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "upload_failed", "Upload failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListFiles enumerates the media files in a folder, newest first.
// @Tags Media
// @Summary List media files
// @Security BearerAuth
// @Produce json
// @Param folder query string false "Folder to list"
// @Success 200 {object} map[string][]models.MediaFile
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/media [get]
func (h *MediaHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	if !h.storageReady(w) {
		return
	}

	folder := r.URL.Query().Get("folder")
	if folder == "" {
		folder = defaultMediaFolder
	}

	files, err := h.storage.ListFiles(r.Context(), folder)
	if err != nil {
		log.Printf("Failed to list media folder %s: %v", folder, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_failed", "Failed to list files")
		return
	}
	if files == nil {
		files = []models.MediaFile{}
	}

	writeJSON(w, http.StatusOK, map[string][]models.MediaFile{"files": files})
}
