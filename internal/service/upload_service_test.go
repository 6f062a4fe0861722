package service

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "backoffice/internal/errors"
)

func TestUploadService_Save_Validation(t *testing.T) {
	service := NewUploadService(t.TempDir(), "", 1<<20)

	t.Run("unknown upload type", func(t *testing.T) {
		file := &multipart.FileHeader{Filename: "pic.png", Size: 100}
		result, err := service.Save(file, "invoice")
		assert.ErrorIs(t, err, apperrors.ErrInvalidUploadType)
		assert.Nil(t, result)
	})

	t.Run("disallowed extension", func(t *testing.T) {
		file := &multipart.FileHeader{Filename: "script.exe", Size: 100}
		result, err := service.Save(file, "product")
		assert.ErrorIs(t, err, apperrors.ErrInvalidUploadFile)
		assert.Nil(t, result)
	})

	t.Run("document extension rejected regardless of case", func(t *testing.T) {
		file := &multipart.FileHeader{Filename: "photo.PDF", Size: 100}
		result, err := service.Save(file, "product")
		assert.ErrorIs(t, err, apperrors.ErrInvalidUploadFile)
		assert.Nil(t, result)
	})

	t.Run("oversized file", func(t *testing.T) {
		file := &multipart.FileHeader{Filename: "huge.jpg", Size: 2 << 20}
		result, err := service.Save(file, "product")
		assert.ErrorIs(t, err, apperrors.ErrInvalidUploadFile)
		assert.Nil(t, result)
	})
}

func TestUploadService_ResolveImageURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		stored   string
		expected string
	}{
		{
			name:     "empty stays empty",
			stored:   "",
			expected: "",
		},
		{
			name:     "bare filename",
			stored:   "product_123_abcd1234.jpg",
			expected: "/uploads/product_123_abcd1234.jpg",
		},
		{
			name:     "bare filename with base url",
			baseURL:  "https://cdn.example.com",
			stored:   "product_123_abcd1234.jpg",
			expected: "https://cdn.example.com/uploads/product_123_abcd1234.jpg",
		},
		{
			name:     "trailing slash on base url is trimmed",
			baseURL:  "https://cdn.example.com/",
			stored:   "banner.png",
			expected: "https://cdn.example.com/uploads/banner.png",
		},
		{
			name:     "canonical uploads prefix",
			stored:   "/uploads/banner.png",
			expected: "/uploads/banner.png",
		},
		{
			name:     "relative uploads prefix",
			stored:   "uploads/banner.png",
			expected: "/uploads/banner.png",
		},
		{
			name:     "dot-relative uploads prefix",
			stored:   "./uploads/banner.png",
			expected: "/uploads/banner.png",
		},
		{
			name:     "legacy images prefix",
			stored:   "/images/banner.png",
			expected: "/uploads/banner.png",
		},
		{
			name:     "legacy relative images prefix",
			stored:   "images/banner.png",
			expected: "/uploads/banner.png",
		},
		{
			name:     "http url passes through",
			baseURL:  "https://cdn.example.com",
			stored:   "http://other.example.com/pic.jpg",
			expected: "http://other.example.com/pic.jpg",
		},
		{
			name:     "https url passes through",
			stored:   "https://other.example.com/pic.jpg",
			expected: "https://other.example.com/pic.jpg",
		},
		{
			name:     "data url passes through",
			stored:   "data:image/png;base64,iVBORw0KGgo=",
			expected: "data:image/png;base64,iVBORw0KGgo=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewUploadService(t.TempDir(), tt.baseURL, 0)
			assert.Equal(t, tt.expected, service.ResolveImageURL(tt.stored))
		})
	}
}
