package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/cipherhunt/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_OrderAndPosition(t *testing.T) {
	f := setup(t, cryptox.SHA256)
	ctx := context.Background()

	slow := f.register(t, "slow", "pw")
	fast := f.register(t, "fast", "pw")
	f.register(t, "idle", "pw")

	f.clock.ms = 5_000
	_, err := f.game.Submit(ctx, slow, "echo")
	require.NoError(t, err)

	f.clock.ms = 2_000
	_, err = f.game.Submit(ctx, fast, "echo")
	require.NoError(t, err)

	top, err := f.board.Top(ctx)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"fast", "slow", "idle"}, []string{top[0].Username, top[1].Username, top[2].Username})

	pos, err := f.board.Position(ctx, "idle")
	require.NoError(t, err)
	assert.Equal(t, 3, pos)

	pos, err = f.board.Position(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, 0, pos)
}

func TestLeaderboard_Limit(t *testing.T) {
	f := setup(t, cryptox.SHA256)
	ctx := context.Background()
	for _, name := range []string{"a", "b", "c"} {
		f.register(t, name, "pw")
	}

	board := NewLeaderboardService(f.db, f.tracker, 2, f.nopLogger())
	top, err := board.Top(ctx)
	require.NoError(t, err)
	assert.Len(t, top, 2)

	pos, err := board.Position(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, 3, pos)
}

func TestLeaderboard_Empty(t *testing.T) {
	f := setup(t, cryptox.SHA256)
	top, err := f.board.Top(context.Background())
	require.NoError(t, err)
	assert.Empty(t, top)
}
