package collection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignBaseCardsPrefersPriorityVersion(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	err := store.UpsertCards(ctx, []CardPayload{
		payload("john-smith", "250001-john-smith", "John Smith", 95, "TOTY"),
		payload("john-smith", "240001-john-smith", "John Smith", 82, "Common"),
		payload("john-smith", "240002-john-smith", "John Smith", 88, "Rare"),
	})
	require.NoError(t, err)

	updated, err := store.AssignBaseCards(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), updated)

	players, err := store.ListPlayers(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, "Common", players[0].BaseCardVersion)
	require.NotNil(t, players[0].BaseCardRating)
	require.Equal(t, int64(82), *players[0].BaseCardRating)
}

func TestAssignBaseCardsFallsBackToLowestRating(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	err := store.UpsertCards(ctx, []CardPayload{
		payload("john-smith", "250001-john-smith", "John Smith", 90, "TOTY"),
		payload("john-smith", "250002-john-smith", "John Smith", 85, "Hero"),
	})
	require.NoError(t, err)

	updated, err := store.AssignBaseCards(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), updated)

	players, err := store.ListPlayers(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, "Hero", players[0].BaseCardVersion)
	require.Equal(t, int64(85), *players[0].BaseCardRating)
}

func TestAssignBaseCardsSkipsUnchanged(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	err := store.UpsertCards(ctx, []CardPayload{
		payload("john-smith", "240001-john-smith", "John Smith", 84, "Common"),
	})
	require.NoError(t, err)

	updated, err := store.AssignBaseCards(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), updated)

	updated, err = store.AssignBaseCards(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), updated)
}
