package museum

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/artspace/internal/domain"
)

// ErrObjectNotFound is returned when the API does not know an object id.
var ErrObjectNotFound = errors.New("museum object not found")

// object is the subset of the /objects/{id} payload we use.
type object struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	PrimaryImage      string `json:"primaryImage"`
	ObjectDescription string `json:"objectDescription"`
	Classification    string `json:"classification"`
	ObjectDate        string `json:"objectDate"`
}

type searchResult struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

// hasImage reports whether the record carries a usable primary image.
func (o object) hasImage() bool {
	return validImageURL(o.PrimaryImage)
}

func validImageURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// mapObject turns a decoded record into an artwork carrying the given
// synthetic like count. Records without an objectID are unknown objects.
func mapObject(o object, likes int) (domain.Artwork, error) {
	if o.ObjectID <= 0 {
		return domain.Artwork{}, ErrObjectNotFound
	}

	a := domain.Artwork{
		ID:          strconv.Itoa(o.ObjectID),
		Title:       o.Title,
		Artist:      o.ArtistDisplayName,
		Description: o.ObjectDescription,
		Likes:       likes,
		Date:        o.ObjectDate,
		Source:      domain.SourceCurated,
	}
	if a.Title == "" {
		a.Title = "Untitled"
	}
	if a.Artist == "" {
		a.Artist = "Unknown Artist"
	}
	if a.Description == "" {
		a.Description = o.Classification
	}
	if a.Description == "" {
		a.Description = "No description available"
	}
	if o.hasImage() {
		a.ImageURL = o.PrimaryImage
	} else {
		a.ImageURL = domain.PlaceholderImage("No Image")
	}
	return a, nil
}

// parseID accepts only positive decimal ids.
func parseID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrObjectNotFound, id)
	}
	return n, nil
}

// Placeholders returns n stand-in artworks shown when the API is unavailable.
func Placeholders(n int, likes LikeSource) []domain.Artwork {
	out := make([]domain.Artwork, 0, n)
	for i := range n {
		title := fmt.Sprintf("Artwork %d", i+1)
		out = append(out, domain.Artwork{
			ID:          fmt.Sprintf("placeholder-%d", i),
			Title:       title,
			Artist:      "Sample Artist",
			ImageURL:    domain.PlaceholderImage(title),
			Description: "This is a placeholder artwork description when the API is unavailable.",
			Likes:       likes.RandomLikes(),
			Source:      domain.SourcePlaceholder,
		})
	}
	return out
}
