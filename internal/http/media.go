package httpapi

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"portfolio-backend-go/internal/services"
)

type UploadResponse struct {
	AssetID string `json:"assetId"`
	URL     string `json:"url"`
}

// UploadImage stores the raw request body as an image asset and returns the
// URL the content records can reference.
func (s *Server) UploadImage(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	filename := r.URL.Query().Get("filename")
	asset, err := s.Media.SaveAsset(services.BucketImages, contentType, filename, r.Body)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, UploadResponse{
		AssetID: asset.ID,
		URL:     services.BuildAssetURL(asset.ID),
	})
}

func (s *Server) MediaContent(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetId")
	asset, path, err := s.Media.AssetByID(assetID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	file, err := os.Open(path)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Asset not found")
		return
	}
	defer file.Close()
	if asset.ContentType != "" {
		w.Header().Set("Content-Type", asset.ContentType)
	}
	http.ServeContent(w, r, asset.Filename, asset.LastUpdated, file)
}

func (s *Server) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	if err := s.Media.DeleteAsset(chi.URLParam(r, "assetId")); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteMessage(w, http.StatusOK, "Asset deleted", nil)
}
