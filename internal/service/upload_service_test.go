package service

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelasin/kelasin-api/pkg/config"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
	"github.com/kelasin/kelasin-api/pkg/storage"
)

func newTestUploadService(t *testing.T) (*UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	svc := NewUploadService(store, config.UploadConfig{
		Dir:              dir,
		MaxFileSizeBytes: 5 * 1024 * 1024,
		AllowedExts:      []string{".jpg", ".jpeg", ".png", ".pdf"},
	}, nil)
	return svc, dir
}

func TestUploadServiceStore(t *testing.T) {
	svc, dir := newTestUploadService(t)

	stored, err := svc.Store(FileUpload{
		Filename: "cover.png",
		Size:     3,
		Content:  strings.NewReader("img"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(stored.Filename, ".png"))
	assert.NotEqual(t, "cover.png", stored.Filename)
	assert.Equal(t, "/upload/"+stored.Filename, stored.URL)

	data, err := os.ReadFile(filepath.Join(dir, stored.Filename))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))
}

func TestUploadServiceRejectsUnsupportedExtension(t *testing.T) {
	svc, _ := newTestUploadService(t)

	_, err := svc.Store(FileUpload{
		Filename: "malware.exe",
		Size:     3,
		Content:  strings.NewReader("bin"),
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErr.Status)
	assert.Equal(t, "File type is not supported", appErr.Message)
}

func TestUploadServiceRejectsOversizedFile(t *testing.T) {
	svc, _ := newTestUploadService(t)

	_, err := svc.Store(FileUpload{
		Filename: "big.jpg",
		Size:     6 * 1024 * 1024,
		Content:  bytes.NewReader(nil),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}

func TestUploadServiceAcceptsFileWithinLimit(t *testing.T) {
	svc, _ := newTestUploadService(t)

	payload := bytes.Repeat([]byte("a"), 1024*1024)
	stored, err := svc.Store(FileUpload{
		Filename: "photo.JPG",
		Size:     int64(len(payload)),
		Content:  bytes.NewReader(payload),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored.Filename, ".JPG"))
}
