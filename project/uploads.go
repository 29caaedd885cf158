package project

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/designandcart-afk/designandcart/core"
)

// Uploader turns local files into Upload records. The demo adapter only
// records metadata and a file:// URL; a production adapter would push the
// bytes to Drive or object storage and return the real URL, keeping the
// record shape unchanged.
type Uploader struct {
	ids core.IDSource
}

// NewUploader creates a demo upload adapter
func NewUploader(ids core.IDSource) *Uploader {
	if ids == nil {
		ids = core.UUIDSource{}
	}
	return &Uploader{ids: ids}
}

// UploadFiles builds Upload records for the given local paths
func (u *Uploader) UploadFiles(paths []string) ([]Upload, error) {
	out := make([]Upload, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat upload %q: %w", path, err)
		}

		mimeType := mime.TypeByExtension(filepath.Ext(path))
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		out = append(out, Upload{
			ID:   u.ids.NewID("upl_"),
			Name: filepath.Base(path),
			Size: info.Size(),
			Mime: mimeType,
			URL:  "file://" + path,
		})
	}
	return out, nil
}
