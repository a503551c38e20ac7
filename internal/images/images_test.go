package images

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURL(t *testing.T) {
	ct, data, err := ParseDataURL("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, []byte("hello"), data)
}

func TestParseDataURL_Invalid(t *testing.T) {
	for _, s := range []string{
		"https://example.org/a.png",
		"data:image/png;base64",
		"data:image/png,plain",
		"data:image/png;base64,***",
	} {
		_, _, err := ParseDataURL(s)
		assert.ErrorIs(t, err, ErrInvalidDataURL, s)
	}
}

func TestDataURL_RoundTrip(t *testing.T) {
	u := DataURL("image/jpeg", []byte{0xff, 0xd8, 0xff})
	assert.True(t, strings.HasPrefix(u, "data:image/jpeg;base64,"))

	ct, data, err := ParseDataURL(u)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, data)
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check("image/png", []byte("x")))
	assert.ErrorIs(t, Check("text/html", []byte("x")), ErrNotImage)
	assert.ErrorIs(t, Check("image/png", make([]byte, MaxSize+1)), ErrTooLarge)
}

func TestInlineStore(t *testing.T) {
	var s Store = InlineStore{}
	ctx := context.Background()

	ref, err := s.Put(ctx, "image/gif", []byte("GIF89a"))
	require.NoError(t, err)
	assert.Equal(t, DataURL("image/gif", []byte("GIF89a")), ref)

	u, err := s.URL(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, ref, u)
}
