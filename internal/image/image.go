// Package image handles image bytes on their way in and out of the app:
// saving renders to disk, fetching analysis inputs and the data-URI form
// used by the gallery.
package image

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Saver struct {
	httpClient *http.Client
}

func NewSaver() *Saver {
	return &Saver{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Save writes image bytes to path, creating parent directories as needed.
func (s *Saver) Save(data []byte, path string) error {
	if len(data) == 0 {
		return fmt.Errorf("no image data available")
	}

	if err := ensureDir(path); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Fetch downloads image bytes from a URL, for analysis inputs.
func (s *Saver) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed with status: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

// GeneratePath picks the output path for a render. An explicit basePath
// wins; batch renders get a -N suffix before the extension.
func GeneratePath(basePath string, index, total int, t time.Time) string {
	if basePath != "" {
		if total == 1 {
			return basePath
		}
		ext := filepath.Ext(basePath)
		base := basePath[:len(basePath)-len(ext)]
		return fmt.Sprintf("%s-%d%s", base, index+1, ext)
	}

	timestamp := t.Format("20060102-150405")
	if total > 1 {
		return fmt.Sprintf("luckygen-%s-%d.png", timestamp, index+1)
	}
	return fmt.Sprintf("luckygen-%s.png", timestamp)
}

// EncodeDataURI wraps raw image bytes in the data-URI form stored in the
// gallery.
func EncodeDataURI(data []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURI splits a data URI back into bytes and MIME type. The
// legacy image/jpg spelling is normalized to image/jpeg.
func ParseDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, "", fmt.Errorf("not a data URI")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URI")
	}

	mimeType, _, _ := strings.Cut(meta, ";")
	if mimeType == "" {
		mimeType = "image/png"
	}
	if mimeType == "image/jpg" {
		mimeType = "image/jpeg"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode data URI: %w", err)
	}
	return data, mimeType, nil
}

// DetectMIME sniffs the MIME type of image bytes, defaulting to PNG.
func DetectMIME(data []byte) string {
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return "image/png"
	}
	return mimeType
}
