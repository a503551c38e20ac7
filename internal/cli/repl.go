package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Gallery(ctx context.Context) error
	Community(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Like(ctx context.Context, id string) error
	Share(ctx context.Context, id string) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Submit(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

const (
	helpGuest  = "Available commands: gallery, community, show <id>, share <id>, register, login, exit"
	helpMember = "Available commands: gallery, community, show <id>, like <id>, share <id>, submit, delete <id>, profile, logout, exit"
)

// runREPL reads commands line by line and dispatches them to a. It exits
// on end of input or when the user types "exit" or "quit". Command errors
// are reported by the commands themselves.
//
//	gallery          curated museum selection
//	community        community submissions
//	show <id>        artwork detail
//	like <id>        toggle a like (signed in)
//	share <id>       print the share text and link
//	register, login, logout
//	profile          own submissions and liked artworks (signed in)
//	submit           submit an artwork (signed in)
//	delete <id>      delete an own submission (signed in)
//	exit | quit
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "artspace %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		withID := func(f func(context.Context, string) error) {
			if len(args) == 0 {
				fmt.Fprintf(w, "Usage: %s <id>\n", cmd)
				return
			}
			_ = f(ctx, args[0])
		}

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(w, helpMember)
			} else {
				fmt.Fprintln(w, helpGuest)
			}
		case "gallery":
			_ = a.Gallery(ctx)
		case "community":
			_ = a.Community(ctx)
		case "show":
			withID(a.Show)
		case "like":
			withID(a.Like)
		case "share":
			withID(a.Share)
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "submit":
			_ = a.Submit(ctx)
		case "delete":
			withID(a.Delete)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
