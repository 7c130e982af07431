package media

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
)

var allowedImageTypes = []string{MimeJPEG, MimePNG}

var allowedImageNames = map[string]string{
	MimeJPEG: "JPEG",
	MimePNG:  "PNG",
}

// detectImageType sniffs the payload and returns its canonical mime type when
// it is one of the accepted profile image formats.
func detectImageType(data []byte) (string, error) {
	detected := mimetype.Detect(data)
	for _, allowed := range allowedImageTypes {
		if detected.Is(allowed) {
			return allowed, nil
		}
	}
	return "", fmt.Errorf("unsupported image type %s, expected %s", detected.String(), allowedImageDescription())
}

func allowedImageDescription() string {
	names := make([]string, 0, len(allowedImageTypes))
	for _, mimeType := range allowedImageTypes {
		names = append(names, allowedImageNames[mimeType])
	}
	return humanReadableList(names)
}

func humanReadableList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return fmt.Sprintf("%s or %s", items[0], items[1])
	default:
		return fmt.Sprintf("%s, or %s", strings.Join(items[:len(items)-1], ", "), items[len(items)-1])
	}
}
