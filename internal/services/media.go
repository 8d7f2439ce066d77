package services

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/store"
)

const BucketImages = "images"

// MediaService stores uploaded files under the media directory and tracks
// their metadata in the assets collection.
type MediaService struct {
	BasePath string
	Assets   *Collection[models.MediaAsset, *models.MediaAsset]
}

func NewMediaService(st *store.Store, basePath string) *MediaService {
	return &MediaService{
		BasePath: basePath,
		Assets: &Collection[models.MediaAsset, *models.MediaAsset]{
			Store:    st,
			Name:     "assets",
			IDPrefix: "asset",
		},
	}
}

func (m *MediaService) ensureBucket(bucket string) (string, error) {
	path := filepath.Join(m.BasePath, bucket)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// SaveAsset streams the body to disk under a fresh storage key and records
// the asset. An empty body is rejected and leaves nothing behind.
func (m *MediaService) SaveAsset(bucket, contentType, filename string, body io.Reader) (models.MediaAsset, error) {
	bucketPath, err := m.ensureBucket(bucket)
	if err != nil {
		return models.MediaAsset{}, WrapError(err, "create media bucket")
	}
	storageKey := uuid.NewString()
	targetPath := filepath.Join(bucketPath, storageKey)

	file, err := os.Create(targetPath)
	if err != nil {
		return models.MediaAsset{}, WrapError(err, "create media file")
	}
	hasher := sha256.New()
	size, err := io.Copy(io.MultiWriter(file, hasher), body)
	_ = file.Close()
	if err != nil {
		_ = os.Remove(targetPath)
		return models.MediaAsset{}, WrapError(err, "write media file")
	}
	if size == 0 {
		_ = os.Remove(targetPath)
		return models.MediaAsset{}, ErrBadRequest("Uploaded file is empty")
	}

	asset, err := m.Assets.Add(models.MediaAsset{
		Bucket:      bucket,
		StorageKey:  storageKey,
		Filename:    filename,
		ContentType: contentType,
		SizeBytes:   size,
		Sha256:      hex.EncodeToString(hasher.Sum(nil)),
		CreatedDate: time.Now(),
	})
	if err != nil {
		_ = os.Remove(targetPath)
		return models.MediaAsset{}, err
	}
	return asset, nil
}

// AssetByID returns the asset record and the path of its content.
func (m *MediaService) AssetByID(assetID string) (models.MediaAsset, string, error) {
	assets, err := m.Assets.List()
	if err != nil {
		return models.MediaAsset{}, "", err
	}
	for _, asset := range assets {
		if asset.ID == assetID {
			return asset, filepath.Join(m.BasePath, asset.Bucket, asset.StorageKey), nil
		}
	}
	return models.MediaAsset{}, "", ErrNotFound("Asset not found")
}

// DeleteAsset removes the record and its file. A missing asset is not an
// error.
func (m *MediaService) DeleteAsset(assetID string) error {
	asset, path, err := m.AssetByID(assetID)
	if err != nil {
		return nil
	}
	if _, err := m.Assets.Delete(asset.ID); err != nil {
		return err
	}
	_ = os.Remove(path)
	return nil
}

func BuildAssetURL(assetID string) string {
	return "/api/media/assets/" + assetID + "/content"
}
