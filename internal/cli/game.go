package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/cipherhunt/internal/common"
	"github.com/dmitrijs2005/cipherhunt/internal/progress"
)

func (a *App) showCurrent() {
	v, err := a.gameService.Current(a.session)
	if err != nil {
		return
	}
	fmt.Fprintln(a.out, renderLevel(v))
}

// Levels prints every level with its locked/open/solved state.
func (a *App) Levels(ctx context.Context) error {
	views, err := a.gameService.Levels(a.session)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	fmt.Fprintln(a.out, renderLevels(views, a.session.CurrentLevel))
	return nil
}

// Play switches to level arg. Without an argument it shows the current level.
func (a *App) Play(ctx context.Context, arg string) error {
	if arg == "" {
		a.showCurrent()
		return nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: play <level>")
		return err
	}

	v, err := a.gameService.Open(a.session, n)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	fmt.Fprintln(a.out, renderLevel(v))
	return nil
}

// Answer submits text for the current level. Blank input is ignored.
func (a *App) Answer(ctx context.Context, text string) error {
	level := a.session.CurrentLevel

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	res, err := a.gameService.Submit(opCtx, a.session, text)
	if err != nil {
		if errors.Is(err, common.ErrEmptySubmission) {
			return nil
		}
		a.report(ctx, err)
		return err
	}

	if res != progress.Correct {
		fmt.Fprintln(a.out, renderError("Incorrect, try again."))
		return nil
	}

	fmt.Fprintln(a.out, renderSuccess("Correct!"))
	if a.session.CurrentLevel == level {
		fmt.Fprintln(a.out, "That was the last level. Check the board to see where you stand.")
		return nil
	}
	a.showCurrent()
	return nil
}
