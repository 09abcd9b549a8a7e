package cli

import (
	"context"
	"fmt"
)

var getMultiline = GetMultiline

// Notes prints the player's scratchpad.
func (a *App) Notes(ctx context.Context) error {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	text, err := a.notesService.Get(opCtx, a.session)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	if text == "" {
		fmt.Fprintln(a.out, lockedStyle.Render("(no notes)"))
		return nil
	}
	fmt.Fprintln(a.out, text)
	return nil
}

// EditNotes replaces the scratchpad with multi-line input. An empty entry
// clears it.
func (a *App) EditNotes(ctx context.Context) error {
	text, err := getMultiline(a.reader, "Enter notes", a.out)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	if err := a.notesService.Save(opCtx, a.session, text); err != nil {
		a.report(ctx, err)
		return err
	}
	fmt.Fprintln(a.out, "Notes saved.")
	return nil
}
