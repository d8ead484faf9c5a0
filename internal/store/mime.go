package store

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// extensionOverrides pins the extension of common attachment types where the
// registry would pick a less familiar one.
var extensionOverrides = map[string]string{
	"image/jpeg":      "jpg",
	"image/jpg":       "jpg",
	"image/pjpeg":     "jpg",
	"image/png":       "png",
	"image/gif":       "gif",
	"image/webp":      "webp",
	"image/bmp":       "bmp",
	"image/heic":      "heic",
	"video/mp4":       "mp4",
	"video/3gpp":      "3gp",
	"video/quicktime": "mov",
	"video/webm":      "webm",
	"audio/mpeg":      "mp3",
	"text/plain":      "txt",
}

// ExtensionFor maps a MIME type to a file extension without the leading dot.
// Parameters and letter case are ignored. Returns [ErrUnknownContentType]
// when neither the override table nor the mimetype registry knows the type.
func ExtensionFor(contentType string) (string, error) {
	mediaType := contentType
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	if mediaType == "" {
		return "", fmt.Errorf("%w: empty", ErrUnknownContentType)
	}

	if ext, ok := extensionOverrides[mediaType]; ok {
		return ext, nil
	}

	if m := mimetype.Lookup(mediaType); m != nil {
		if ext := strings.TrimPrefix(m.Extension(), "."); ext != "" {
			return ext, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownContentType, contentType)
}

// contentFileName is the relative path of an attachment inside a content store.
func contentFileName(attachmentID, ext string) string {
	return attachmentID + "." + ext
}
