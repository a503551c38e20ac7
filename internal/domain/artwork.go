package domain

import (
	"net/url"
	"time"
)

type Source string

const (
	SourceCurated     Source = "curated"
	SourceCommunity   Source = "community"
	SourcePlaceholder Source = "placeholder"
)

type Artwork struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Artist      string     `json:"artist"`
	ImageURL    string     `json:"imageUrl"`
	Description string     `json:"description"`
	Likes       int        `json:"likes"`
	Date        string     `json:"date,omitempty"`
	UserID      string     `json:"userId,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	Source      Source     `json:"source"`
}

// OwnedBy reports whether u submitted the artwork.
func (a *Artwork) OwnedBy(u *User) bool {
	return u != nil && a.UserID != "" && a.UserID == u.ID
}

// PlaceholderImage is the relative URL of a generated placeholder image
// carrying text.
func PlaceholderImage(text string) string {
	q := url.Values{}
	q.Set("height", "600")
	q.Set("width", "400")
	q.Set("text", text)
	return "/placeholder.svg?" + q.Encode()
}

// NotFoundArtwork stands in for an id that neither catalog knows.
func NotFoundArtwork(id string) Artwork {
	return Artwork{
		ID:          id,
		Title:       "Artwork Not Found",
		Artist:      "Unknown",
		ImageURL:    PlaceholderImage("Not Found"),
		Description: "This artwork could not be found.",
		Source:      SourcePlaceholder,
	}
}

// ErrorArtwork stands in for an artwork whose remote lookup failed.
func ErrorArtwork(id string) Artwork {
	return Artwork{
		ID:          id,
		Title:       "Error Loading Artwork",
		Artist:      "Unknown",
		ImageURL:    PlaceholderImage("Error"),
		Description: "There was an error loading this artwork.",
		Source:      SourcePlaceholder,
	}
}
