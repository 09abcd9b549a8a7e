package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests use a recording stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Levels(ctx context.Context) error
	Play(ctx context.Context, arg string) error
	Answer(ctx context.Context, text string) error
	Notes(ctx context.Context) error
	EditNotes(ctx context.Context) error
	Board(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, board, exit"
	helpLoggedIn  = "Available commands: levels, play <n>, (a)nswer <text>, notes, note, board, whoami, logout, exit"
)

// runREPL reads commands from reader until EOF, "exit" or "quit" and
// dispatches them to a. Prompts and REPL messages go to w.
//
//	Not logged in:
//	  help, register, login, board, exit | quit
//
//	Logged in:
//	  help, levels, play <n>, answer <text>, notes, note, board, whoami,
//	  logout, exit | quit
//
// Handler errors are not returned; handlers report to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "ch %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		rest := strings.TrimSpace(strings.TrimSpace(line)[len(parts[0]):])

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "board", "leaderboard":
			_ = a.Board(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		case "levels", "play", "a", "answer", "notes", "note", "whoami", "logout":
			if !a.isLoggedIn() {
				fmt.Fprintln(w, "Please login first")
				continue
			}
			dispatchSession(ctx, a, cmd, rest)

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func dispatchSession(ctx context.Context, a execIface, cmd, rest string) {
	switch cmd {
	case "levels":
		_ = a.Levels(ctx)
	case "play":
		_ = a.Play(ctx, rest)
	case "a", "answer":
		_ = a.Answer(ctx, rest)
	case "notes":
		_ = a.Notes(ctx)
	case "note":
		_ = a.EditNotes(ctx)
	case "whoami":
		_ = a.WhoAmI(ctx)
	case "logout":
		_ = a.Logout(ctx)
	}
}
