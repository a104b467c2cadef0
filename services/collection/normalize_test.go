package collection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDisplayNamesRenamesCollisions(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	first := payload("john-smith", "240001-john-smith", "John Smith", 84, "Common")
	second := payload("john-smith-2", "240002-john-smith-2", "John Smith", 79, "Common")
	err := store.UpsertCards(ctx, []CardPayload{first, second})
	require.NoError(t, err)

	// only john-smith-2 changes, the slug of john-smith already titles to
	// its current name
	updated, err := store.NormalizeDisplayNames(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), updated)

	detail, err := store.GetPlayer(ctx, "john-smith-2")
	require.NoError(t, err)
	require.Equal(t, "John Smith 2", detail.DisplayName)

	detail, err = store.GetPlayer(ctx, "john-smith")
	require.NoError(t, err)
	require.Equal(t, "John Smith", detail.DisplayName)
}

func TestNormalizeDisplayNamesLeavesUniqueNames(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	err := store.UpsertCards(ctx, []CardPayload{
		payload("erling-haaland", "240010-erling-haaland", "Erling Haaland", 91, "Common"),
	})
	require.NoError(t, err)

	updated, err := store.NormalizeDisplayNames(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), updated)

	detail, err := store.GetPlayer(ctx, "erling-haaland")
	require.NoError(t, err)
	require.Equal(t, "Erling Haaland", detail.DisplayName)
}
