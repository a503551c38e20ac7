// Package images stores uploaded artwork images and turns stored references
// into URLs a browser can display.
package images

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
)

// MaxSize bounds a single uploaded image.
const MaxSize = 5 << 20

var (
	ErrInvalidDataURL = errors.New("invalid data URL")
	ErrNotImage       = errors.New("not an image")
	ErrTooLarge       = errors.New("image too large")
)

// Store keeps image bytes and resolves references.
type Store interface {
	// Put stores data and returns a reference to persist with the artwork.
	Put(ctx context.Context, contentType string, data []byte) (string, error)
	// URL resolves a reference returned by Put. Plain URLs pass through.
	URL(ctx context.Context, ref string) (string, error)
}

// Check rejects payloads that are not images or exceed MaxSize.
func Check(contentType string, data []byte) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotImage
	}
	if len(data) > MaxSize {
		return ErrTooLarge
	}
	return nil
}

// DataURL encodes data as a base64 data: URL.
func DataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURL decodes a "data:<type>;base64,<payload>" URL.
func ParseDataURL(s string) (contentType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	contentType, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	if contentType == "" {
		contentType = "text/plain"
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errors.Join(ErrInvalidDataURL, err)
	}
	return contentType, data, nil
}

// InlineStore keeps images inside the reference itself as data: URLs.
type InlineStore struct{}

func (InlineStore) Put(_ context.Context, contentType string, data []byte) (string, error) {
	return DataURL(contentType, data), nil
}

func (InlineStore) URL(_ context.Context, ref string) (string, error) {
	return ref, nil
}
