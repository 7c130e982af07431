package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/angelmondragon/mentormatch-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
	"github.com/disintegration/imaging"
)

// Rules bound what a profile image may look like.
type Rules struct {
	MaxBytes    int64
	MinSide     int
	MaxSide     int
	JPEGQuality int
}

func RulesFromConfig(cfg config.MediaConfig) Rules {
	return Rules{
		MaxBytes:    cfg.MaxBytes,
		MinSide:     cfg.MinSide,
		MaxSide:     cfg.MaxSide,
		JPEGQuality: cfg.JPEGQuality,
	}
}

// Image is a validated, re-encoded profile image ready to store.
type Image struct {
	Data        []byte
	ContentType string
	Side        int
}

// Validate checks size, format and geometry, then re-encodes the picture with
// its EXIF orientation applied so no source metadata is stored.
func (r Rules) Validate(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, invalidImage("image is empty")
	}
	if r.MaxBytes > 0 && int64(len(data)) > r.MaxBytes {
		return nil, invalidImage(fmt.Sprintf("image is %d bytes, limit is %d", len(data), r.MaxBytes))
	}

	contentType, err := detectImageType(data)
	if err != nil {
		return nil, invalidImage(err.Error())
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, invalidImage("image could not be decoded")
	}
	if cfg.Width != cfg.Height {
		return nil, invalidImage(fmt.Sprintf("image must be square, got %dx%d", cfg.Width, cfg.Height))
	}
	if cfg.Width < r.MinSide || cfg.Width > r.MaxSide {
		return nil, invalidImage(fmt.Sprintf("image side must be between %d and %d px, got %d", r.MinSide, r.MaxSide, cfg.Width))
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, invalidImage("image could not be decoded")
	}

	var buf bytes.Buffer
	switch contentType {
	case MimeJPEG:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(r.quality()))
	default:
		err = imaging.Encode(&buf, img, imaging.PNG)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "re-encode image")
	}

	return &Image{Data: buf.Bytes(), ContentType: contentType, Side: cfg.Width}, nil
}

func (r Rules) quality() int {
	if r.JPEGQuality <= 0 || r.JPEGQuality > 100 {
		return 90
	}
	return r.JPEGQuality
}

func invalidImage(reason string) error {
	return pkgerrors.New(pkgerrors.CodeInvalidImage, reason).WithDetails(map[string]string{"reason": reason})
}
