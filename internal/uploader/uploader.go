package uploader

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/danuarta/certificate-analyzer-api/internal/models"
	"github.com/danuarta/certificate-analyzer-api/internal/utils"
)

// allowedContentTypes is the upload allow-list. application/pdf is included
// alongside the image types so the PDF pipeline is reachable.
var allowedContentTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
	"image/gif":       {},
	"application/pdf": {},
}

// Uploader writes multipart file parts into a local directory.
type Uploader struct {
	dir         string
	maxFileSize int64
	maxFiles    int
}

func New(dir string, maxFileSize int64, maxFiles int) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &Uploader{
		dir:         dir,
		maxFileSize: maxFileSize,
		maxFiles:    maxFiles,
	}, nil
}

// Save validates one multipart part and writes it to the upload directory
// under a collision-resistant name: <field>-<unixMillis>-<random>.<ext>.
func (u *Uploader) Save(field string, header *multipart.FileHeader) (*models.UploadedFile, error) {
	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedContentTypes[contentType]; !ok {
		return nil, utils.NewBadRequestError(fmt.Sprintf("File type %q is not allowed", contentType))
	}

	if header.Size > u.maxFileSize {
		return nil, utils.NewBadRequestError("File size exceeds 5MB limit")
	}

	src, err := header.Open()
	if err != nil {
		return nil, utils.NewInternalError("Failed to read uploaded file")
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
	path := filepath.Join(u.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, utils.NewInternalError("Failed to store uploaded file")
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(src, u.maxFileSize+1))
	if err != nil {
		os.Remove(path)
		return nil, utils.NewInternalError("Failed to store uploaded file")
	}
	if written > u.maxFileSize {
		os.Remove(path)
		return nil, utils.NewBadRequestError("File size exceeds 5MB limit")
	}

	return &models.UploadedFile{
		OriginalName:   header.Filename,
		StoredFilename: name,
		StoredPath:     path,
		MimeType:       contentType,
		Size:           written,
	}, nil
}

// SaveAll stores a batch of parts, enforcing the per-request file cap before
// any part is written.
func (u *Uploader) SaveAll(field string, headers []*multipart.FileHeader) ([]*models.UploadedFile, error) {
	if len(headers) > u.maxFiles {
		return nil, utils.NewBadRequestError(fmt.Sprintf("Too many files: at most %d allowed", u.maxFiles))
	}

	saved := make([]*models.UploadedFile, 0, len(headers))
	for _, header := range headers {
		file, err := u.Save(field, header)
		if err != nil {
			return nil, err
		}
		saved = append(saved, file)
	}

	return saved, nil
}
