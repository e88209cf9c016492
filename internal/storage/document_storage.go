package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize is the per-file upload limit (15 MiB)
const MaxFileSize = 15 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg":         true,
	"image/jpg":          true,
	"image/png":          true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

// LocalStorage persists restaurant documents on the local filesystem.
// Files land under <root>/restaurants/<profileID>/<generatedName> and are
// served under <publicPrefix>/restaurants/<profileID>/<generatedName>.
type LocalStorage struct {
	root         string
	publicPrefix string
}

func NewLocalStorage(root, publicPrefix string) *LocalStorage {
	return &LocalStorage{
		root:         root,
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
	}
}

// GenerateFilename builds a collision-resistant name keeping the original extension
func (s *LocalStorage) GenerateFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.New().String(), ext)
}

// ValidateFileSize checks the file against the per-file size limit
func (s *LocalStorage) ValidateFileSize(size int64) error {
	if size > MaxFileSize {
		return fmt.Errorf("file size %d exceeds maximum allowed size of %d bytes", size, MaxFileSize)
	}
	return nil
}

// ValidateFileType accepts a file when either its declared MIME type or its
// extension is on the allow-list
func (s *LocalStorage) ValidateFileType(mimeType, filename string) error {
	if allowedMimeTypes[strings.ToLower(mimeType)] {
		return nil
	}
	if allowedExtensions[strings.ToLower(filepath.Ext(filename))] {
		return nil
	}
	return fmt.Errorf("file type %q (%s) is not allowed", filepath.Ext(filename), mimeType)
}

// Save writes the file under the profile's directory, creating it if absent,
// and returns the public URL path of the stored file
func (s *LocalStorage) Save(profileID uint, generatedName string, src io.Reader) (string, error) {
	dir := filepath.Join(s.root, "restaurants", fmt.Sprintf("%d", profileID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, generatedName))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.PublicPath(profileID, generatedName), nil
}

// PublicPath returns the URL path a stored document is served under
func (s *LocalStorage) PublicPath(profileID uint, name string) string {
	return fmt.Sprintf("%s/restaurants/%d/%s", s.publicPrefix, profileID, name)
}
