package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dmitrijs2005/artspace/internal/community"
	"github.com/dmitrijs2005/artspace/internal/domain"
	"github.com/dmitrijs2005/artspace/internal/gallery"
	"github.com/dmitrijs2005/artspace/internal/validator"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

func (a *App) Gallery(ctx context.Context) error {
	a.printCards("Curated collection", a.gallery.Curated(ctx, a.session.Current(ctx)))
	return nil
}

func (a *App) Community(ctx context.Context) error {
	a.printCards("Community gallery", a.gallery.Community(ctx, a.session.Current(ctx)))
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	c := a.gallery.Detail(ctx, a.session.Current(ctx), id)

	fmt.Fprintf(a.out, "%s\n  by %s\n", c.Title, c.Artist)
	if c.Date != "" {
		fmt.Fprintf(a.out, "  date: %s\n", c.Date)
	}
	fmt.Fprintf(a.out, "  likes: %d%s\n", c.Likes, likedMark(c.Liked))
	fmt.Fprintf(a.out, "  image: %s\n", c.ImageURL)
	if c.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", c.Description)
	}
	return nil
}

func (a *App) Like(ctx context.Context, id string) error {
	res, err := a.gallery.Like(ctx, a.session.Current(ctx), id)
	if err != nil {
		return a.report(err)
	}

	verb := "Unliked"
	if res.Liked {
		verb = "Liked"
	}
	if res.Counted {
		fmt.Fprintf(a.out, "%s %s (%d likes)\n", verb, id, res.Likes)
	} else {
		fmt.Fprintf(a.out, "%s %s\n", verb, id)
	}
	return nil
}

func (a *App) Share(ctx context.Context, id string) error {
	s := gallery.ShareOf(a.gallery.Detail(ctx, a.session.Current(ctx), id).Artwork, a.baseURL)
	fmt.Fprintf(a.out, "%s\n%s\n", s.Text, s.URL)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return a.report(err)
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.report(err)
	}
	password, err := getPassword(a.out)
	if err != nil {
		return a.report(err)
	}

	u, err := a.session.Register(ctx, username, email, password)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Username)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return a.report(err)
	}
	password, err := getPassword(a.out)
	if err != nil {
		return a.report(err)
	}

	u, err := a.session.Login(ctx, username, password)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", u.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	p, err := a.gallery.Profile(ctx, a.session.Current(ctx))
	if err != nil {
		return a.report(err)
	}

	fmt.Fprintf(a.out, "%s <%s>, member since %s\n", p.User.Username, p.User.Email, p.User.CreatedAt.Format("2006-01-02"))
	a.printCards("Your submissions", p.Submissions)
	a.printCards("Liked artworks", p.Liked)
	return nil
}

func (a *App) Submit(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		return a.report(domain.ErrUnauthenticated)
	}

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return a.report(err)
	}
	desc, err := getMultiline(a.reader, "Description", a.out)
	if err != nil {
		return a.report(err)
	}
	img, err := getSimpleText(a.reader, "Image URL or file path (empty for none)", a.out)
	if err != nil {
		return a.report(err)
	}

	in := community.SubmitInput{Title: title, Description: desc}
	if err := loadImage(&in, img); err != nil {
		return a.report(err)
	}

	c, err := a.gallery.Submit(ctx, a.session.Current(ctx), in)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Submitted %q as %s\n", c.Title, c.ID)
	return nil
}

// loadImage fills in from a URL or a local file path.
func loadImage(in *community.SubmitInput, src string) error {
	if src == "" || strings.Contains(src, "://") || strings.HasPrefix(src, "data:") {
		in.ImageURL = src
		return nil
	}

	data, err := readFile(src)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	in.Image = data
	in.ContentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(src)))
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.gallery.Delete(ctx, a.session.Current(ctx), id); err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Deleted %s\n", id)
	return nil
}

func (a *App) printCards(title string, cards []gallery.Card) {
	fmt.Fprintf(a.out, "%s (%d)\n", title, len(cards))
	if len(cards) == 0 {
		fmt.Fprintln(a.out, "  nothing here yet")
		return
	}
	for _, c := range cards {
		fmt.Fprintf(a.out, "  %-38s %s by %s, %d likes%s\n", c.ID, c.Title, c.Artist, c.Likes, likedMark(c.Liked))
	}
}

func likedMark(liked bool) string {
	if liked {
		return " (liked)"
	}
	return ""
}

// report prints err in user terms and returns it.
func (a *App) report(err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fields := make([]string, 0, len(verrs))
		for f := range verrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(a.out, "  %s: %s\n", f, verrs[f])
		}
	case errors.Is(err, domain.ErrUnauthenticated):
		fmt.Fprintln(a.out, "Please log in first")
	case errors.Is(err, domain.ErrForbidden):
		fmt.Fprintln(a.out, "You can only delete your own artworks")
	case errors.Is(err, domain.ErrDuplicateUsername), errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrInvalidCredentials):
		fmt.Fprintf(a.out, "%s\n", capitalize(err.Error()))
	default:
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
