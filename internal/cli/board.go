package cli

import (
	"context"
	"fmt"
)

// Board prints the leaderboard and, when logged in, the player's position.
func (a *App) Board(ctx context.Context) error {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	entries, err := a.boardService.Top(opCtx)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	fmt.Fprintln(a.out, renderBoard(entries, a.session.Username(), a.now()))

	if !a.isLoggedIn() {
		return nil
	}
	pos, err := a.boardService.Position(opCtx, a.session.Username())
	if err != nil {
		a.report(ctx, err)
		return err
	}
	if p := renderPosition(pos); p != "" {
		fmt.Fprintln(a.out, p)
	}
	return nil
}
