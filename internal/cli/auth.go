package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cipherhunt/internal/common"
	"github.com/dmitrijs2005/cipherhunt/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

func (a *App) authenticate(ctx context.Context, fn func(context.Context, string, []byte) (*services.Session, error)) error {
	userName, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	s, err := fn(opCtx, userName, password)
	if err != nil {
		a.report(ctx, err)
		return err
	}

	a.session = s
	fmt.Fprintf(a.out, "%s\n", renderSuccess("Welcome, "+s.Username()+"!"))
	a.showCurrent()
	return nil
}

// Register prompts for a username and password and creates the account.
// On success the new user is logged in.
func (a *App) Register(ctx context.Context) error {
	return a.authenticate(ctx, a.authService.Register)
}

// Login prompts for credentials and replaces the current session on success.
// A failed login leaves the current session as it was.
func (a *App) Login(ctx context.Context) error {
	return a.authenticate(ctx, a.authService.Login)
}

// Logout forgets the session both in memory and in storage.
func (a *App) Logout(ctx context.Context) error {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	if err := a.authService.Logout(opCtx); err != nil {
		a.report(ctx, err)
		return err
	}
	a.session = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the username, progress and leaderboard position.
func (a *App) WhoAmI(ctx context.Context) error {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	pos, err := a.boardService.Position(opCtx, a.session.Username())
	if err != nil {
		a.report(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "%s, solved %s, playing level %d.", a.session.Username(), a.gameService.Summary(a.session), a.session.CurrentLevel)
	if p := renderPosition(pos); p != "" {
		fmt.Fprint(a.out, " "+p)
	}
	fmt.Fprintln(a.out)
	return nil
}
