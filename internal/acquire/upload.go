package acquire

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// AudioExtensions lists the file types accepted for upload and inbox processing.
var AudioExtensions = []string{".mp3", ".wav", ".m4a"}

// IsAudioFile reports whether path has one of the accepted audio extensions.
func IsAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, a := range AudioExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

// SaveUpload stores r as dir/<base of name> and returns the stored path.
func SaveUpload(dir, name string, r io.Reader) (string, error) {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) || !IsAudioFile(base) {
		return "", fmt.Errorf("upload %q: %w", name, ErrUnsupportedFormat)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	dst := filepath.Join(dir, base)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return dst, nil
}
