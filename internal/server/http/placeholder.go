package http

import (
	"fmt"
	"html"
	"net/http"
	"strconv"
)

const (
	defaultPlaceholderWidth  = 400
	defaultPlaceholderHeight = 600
	maxPlaceholderSide       = 2000
)

// Placeholder renders a grey SVG with the requested caption.
func Placeholder(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	width := side(q.Get("width"), defaultPlaceholderWidth)
	height := side(q.Get("height"), defaultPlaceholderHeight)
	text := q.Get("text")
	if text == "" {
		text = "ArtSpace"
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
		`<rect width="100%%" height="100%%" fill="#e5e7eb"/>`+
		`<text x="50%%" y="50%%" fill="#6b7280" font-family="sans-serif" font-size="%d" text-anchor="middle" dominant-baseline="middle">%s</text>`+
		`</svg>`,
		width, height, width, height, fontSize(width), html.EscapeString(text))
}

func side(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return min(n, maxPlaceholderSide)
}

func fontSize(width int) int {
	return max(width/16, 10)
}
