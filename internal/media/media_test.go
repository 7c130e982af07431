package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() Rules {
	return Rules{MaxBytes: 1 << 20, MinSide: 500, MaxSide: 1000, JPEGQuality: 85}
}

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y += 10 {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(w, h)))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, solid(w, h), &jpeg.Options{Quality: 80}))
	return buf.Bytes()
}

func requireInvalidImage(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeInvalidImage, pkgerrors.CodeOf(err))
}

func TestValidateAcceptsSquarePNG(t *testing.T) {
	img, err := testRules().Validate(encodePNG(t, 500, 500))
	require.NoError(t, err)
	assert.Equal(t, MimePNG, img.ContentType)
	assert.Equal(t, 500, img.Side)
	assert.NotEmpty(t, img.Data)
}

func TestValidateAcceptsSquareJPEGAtUpperBound(t *testing.T) {
	img, err := testRules().Validate(encodeJPEG(t, 1000, 1000))
	require.NoError(t, err)
	assert.Equal(t, MimeJPEG, img.ContentType)
	assert.Equal(t, 1000, img.Side)
}

func TestValidateRejections(t *testing.T) {
	cases := map[string][]byte{
		"empty":      nil,
		"not square": encodePNG(t, 600, 500),
		"too small":  encodePNG(t, 499, 499),
		"too large":  encodeJPEG(t, 1001, 1001),
		"gif":        []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;"),
		"truncated":  encodePNG(t, 500, 500)[:64],
		"text":       []byte("definitely not an image"),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := testRules().Validate(data)
			requireInvalidImage(t, err)
		})
	}
}

func TestValidateRejectsOversizedPayload(t *testing.T) {
	rules := testRules()
	rules.MaxBytes = 100
	_, err := rules.Validate(encodePNG(t, 500, 500))
	requireInvalidImage(t, err)
}

func TestHumanReadableList(t *testing.T) {
	assert.Equal(t, "", humanReadableList(nil))
	assert.Equal(t, "JPEG", humanReadableList([]string{"JPEG"}))
	assert.Equal(t, "JPEG or PNG", humanReadableList([]string{"JPEG", "PNG"}))
	assert.Equal(t, "a, b, or c", humanReadableList([]string{"a", "b", "c"}))
}

func TestKeyAndResolver(t *testing.T) {
	assert.Equal(t, "profiles/mentor/7", Key(enums.UserRoleMentor, 7))
	assert.Equal(t, "/api/images/mentee/3", ImageURL(enums.UserRoleMentee, 3))

	r := NewResolver("https://img/mentor.png", "https://img/mentee.png")
	assert.Equal(t, "https://img/mentor.png", r.Reference(enums.UserRoleMentor, 1, false))
	assert.Equal(t, "https://img/mentee.png", r.Reference(enums.UserRoleMentee, 1, false))
	assert.Equal(t, "/api/images/mentor/1", r.Reference(enums.UserRoleMentor, 1, true))
}

func TestFSStoreRoundTrip(t *testing.T) {
	root := t.TempDir()
	store, err := NewFSStore(root)
	require.NoError(t, err)

	ctx := context.Background()
	key := Key(enums.UserRoleMentor, 42)
	data := encodePNG(t, 500, 500)

	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, key, data, MimePNG))
	obj, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, data, obj.Data)
	assert.Equal(t, MimePNG, obj.ContentType)

	replacement := encodeJPEG(t, 500, 500)
	require.NoError(t, store.Put(ctx, key, replacement, MimeJPEG))
	obj, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, replacement, obj.Data)
	assert.Equal(t, MimeJPEG, obj.ContentType)

	entries, err := os.ReadDir(filepath.Join(root, "profiles", "mentor"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")

	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFSStoreRejectsEscapingKeys(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../outside", "/etc/passwd", "."} {
		assert.Error(t, store.Put(context.Background(), key, []byte("x"), MimePNG), key)
	}
}

func TestMapMinioError(t *testing.T) {
	assert.NoError(t, mapMinioError(nil))
	assert.ErrorIs(t, mapMinioError(minio.ErrorResponse{Code: "NoSuchKey"}), ErrNotFound)

	err := mapMinioError(minio.ErrorResponse{Code: "AccessDenied"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
