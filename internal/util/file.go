package util

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
)

// ValidateMimeType sniffs the first 512 bytes of r and checks the detected
// type against allowed prefixes or full types. The caller rewinds r.
func ValidateMimeType(r io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := r.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])
	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// IsAudioExtension reports whether filename carries one of the accepted audio extensions.
func IsAudioExtension(filename string) bool {
	return slices.Contains(AllowedAudioExtensions, strings.ToLower(filepath.Ext(filename)))
}
