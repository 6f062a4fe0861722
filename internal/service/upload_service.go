package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "backoffice/internal/errors"
)

// UploadResult is what the admin console stores and renders.
type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

var uploadTypes = map[string]bool{
	"product":  true,
	"category": true,
	"banner":   true,
	"popup":    true,
	"menu":     true,
}

var uploadExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// historicalPrefixes are path shapes older rows recorded before the
// canonical /uploads/ layout. ResolveImageURL normalizes them all.
var historicalPrefixes = []string{"/uploads/", "uploads/", "./uploads/", "/images/", "images/"}

// UploadService stores admin-uploaded images under one canonical
// server-side name and resolves stored URLs for the current deployment.
type UploadService interface {
	Save(file *multipart.FileHeader, uploadType string) (*UploadResult, error)
	ResolveImageURL(stored string) string
}

type uploadService struct {
	dir      string
	baseURL  string
	maxBytes int64
}

// NewUploadService creates a new upload service. baseURL may be empty for
// single-host deployments where relative /uploads/ paths resolve.
func NewUploadService(dir, baseURL string, maxBytes int64) UploadService {
	return &uploadService{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/"), maxBytes: maxBytes}
}

// Save writes the upload as {type}_{timestamp}_{random}.{ext} and returns
// the URL the caller must persist verbatim.
func (s *uploadService) Save(file *multipart.FileHeader, uploadType string) (*UploadResult, error) {
	if !uploadTypes[uploadType] {
		return nil, apperrors.ErrInvalidUploadType
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !uploadExtensions[ext] {
		return nil, apperrors.ErrInvalidUploadFile
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return nil, apperrors.ErrInvalidUploadFile
	}

	filename := fmt.Sprintf("%s_%d_%s%s", uploadType, time.Now().UnixNano(), uuid.NewString()[:8], ext)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	return &UploadResult{Filename: filename, URL: s.baseURL + "/uploads/" + filename}, nil
}

// ResolveImageURL translates a stored image reference into a URL valid
// for this deployment. Absolute and data URLs pass through untouched;
// bare filenames and historical path prefixes normalize onto the current
// base.
func (s *uploadService) ResolveImageURL(stored string) string {
	if stored == "" {
		return ""
	}
	if strings.HasPrefix(stored, "http://") ||
		strings.HasPrefix(stored, "https://") ||
		strings.HasPrefix(stored, "data:") {
		return stored
	}

	filename := stored
	for _, prefix := range historicalPrefixes {
		if strings.HasPrefix(filename, prefix) {
			filename = strings.TrimPrefix(filename, prefix)
			break
		}
	}
	return s.baseURL + "/uploads/" + filename
}
