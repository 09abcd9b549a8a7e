package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/cipherhunt/internal/common"
	"github.com/dmitrijs2005/cipherhunt/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotes_PerUser(t *testing.T) {
	f := setup(t, cryptox.SHA256)
	ctx := context.Background()
	alice := f.register(t, "alice", "pw")
	bob := f.register(t, "bob", "pw")

	require.NoError(t, f.notes.Save(ctx, alice, "level 2: remove edges"))

	got, err := f.notes.Get(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "level 2: remove edges", got)

	got, err = f.notes.Get(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNotes_RequireSession(t *testing.T) {
	f := setup(t, cryptox.SHA256)
	_, err := f.notes.Get(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
	require.ErrorIs(t, f.notes.Save(context.Background(), &Session{}, "x"), common.ErrNotLoggedIn)
}
