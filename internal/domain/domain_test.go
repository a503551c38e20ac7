package domain

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeSet_ToggleRoundTrip(t *testing.T) {
	s := LikeSet{"a", "b"}

	s2, liked := s.Toggle("c")
	assert.True(t, liked)
	assert.Equal(t, LikeSet{"a", "b", "c"}, s2)
	assert.Equal(t, LikeSet{"a", "b"}, s, "toggle must not mutate the receiver")

	s3, liked := s2.Toggle("c")
	assert.False(t, liked)
	assert.Equal(t, s, s3)
	assert.False(t, s3.Has("c"))
	assert.True(t, s3.Has("a"))
}

func TestPlaceholders(t *testing.T) {
	for _, a := range []Artwork{NotFoundArtwork("x1"), ErrorArtwork("x2")} {
		assert.NotEmpty(t, a.Title)
		assert.Zero(t, a.Likes)
		assert.Equal(t, SourcePlaceholder, a.Source)
		require.True(t, strings.HasPrefix(a.ImageURL, "/placeholder.svg?"))
	}

	u, err := url.Parse(NotFoundArtwork("x").ImageURL)
	require.NoError(t, err)
	assert.Equal(t, "Not Found", u.Query().Get("text"))
}

func TestArtwork_OwnedBy(t *testing.T) {
	a := Artwork{UserID: "u1"}
	assert.True(t, a.OwnedBy(&User{ID: "u1"}))
	assert.False(t, a.OwnedBy(&User{ID: "u2"}))
	assert.False(t, a.OwnedBy(nil))
	assert.False(t, (&Artwork{}).OwnedBy(&User{}))
}
