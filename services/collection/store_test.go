package collection

import (
	"context"
	"testing"

	"pastpresent-backend/lib/testutil"
	"pastpresent-backend/services/collection/db"

	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (Store, func()) {
	result, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "collection",
		DbSchema: db.Schema,
	})
	return NewStore(result.DB), cleanup
}

func payload(playerSlug, cardSlug, name string, rating int64, version string) CardPayload {
	return CardPayload{
		PlayerSlug:  playerSlug,
		DisplayName: name,
		CardSlug:    cardSlug,
		Name:        name,
		Rating:      rating,
		Version:     version,
		CardUrl:     "https://www.fut.gg/players/" + cardSlug + "/",
		ImageUrl:    "https://cdn.fut.gg/" + cardSlug + ".png",
	}
}

func TestUpsertCardsIdempotent(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	batch := []CardPayload{
		payload("john-smith", "240001-john-smith", "John Smith", 84, "Common"),
		payload("john-smith", "250001-john-smith", "John Smith", 88, "TOTY"),
	}
	err := store.UpsertCards(ctx, batch)
	require.NoError(t, err)
	err = store.UpsertCards(ctx, batch)
	require.NoError(t, err)

	players, err := store.ListPlayers(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, "john-smith", players[0].Slug)
	require.Equal(t, int64(2), players[0].TotalCards)

	detail, err := store.GetPlayer(ctx, "john-smith")
	require.NoError(t, err)
	require.Len(t, detail.Cards, 2)
	// highest rated first
	require.Equal(t, int64(88), detail.Cards[0].Rating)
}

func TestUpsertCardsUpdatesMutableFields(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	err := store.UpsertCards(ctx, []CardPayload{
		payload("john-smith", "240001-john-smith", "John Smith", 84, "Common"),
	})
	require.NoError(t, err)

	upgraded := payload("john-smith", "240001-john-smith", "John Smith", 85, "Rare")
	err = store.UpsertCards(ctx, []CardPayload{upgraded})
	require.NoError(t, err)

	detail, err := store.GetPlayer(ctx, "john-smith")
	require.NoError(t, err)
	require.Len(t, detail.Cards, 1)
	require.Equal(t, int64(85), detail.Cards[0].Rating)
	require.Equal(t, "Rare", detail.Cards[0].Version)
}

func TestUpsertCardsPreservesClubStatus(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	card := payload("john-smith", "240001-john-smith", "John Smith", 84, "Common")
	err := store.UpsertCards(ctx, []CardPayload{card})
	require.NoError(t, err)

	found, err := store.SetCardClubStatus(ctx, card.CardSlug, true)
	require.NoError(t, err)
	require.True(t, found)

	// a re-scrape carries in_club=false and must not clobber the flag
	err = store.UpsertCards(ctx, []CardPayload{card})
	require.NoError(t, err)

	detail, err := store.GetPlayer(ctx, "john-smith")
	require.NoError(t, err)
	require.True(t, detail.Cards[0].InClub)
	require.True(t, detail.AnyInClub)
	require.Equal(t, int64(1), detail.InClubCount)
}

func TestSetCardClubStatusRefreshesAggregate(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	err := store.UpsertCards(ctx, []CardPayload{
		payload("john-smith", "240001-john-smith", "John Smith", 84, "Common"),
		payload("john-smith", "250001-john-smith", "John Smith", 88, "TOTY"),
	})
	require.NoError(t, err)

	found, err := store.SetCardClubStatus(ctx, "250001-john-smith", true)
	require.NoError(t, err)
	require.True(t, found)

	detail, err := store.GetPlayer(ctx, "john-smith")
	require.NoError(t, err)
	require.True(t, detail.AnyInClub)
	require.Equal(t, int64(1), detail.InClubCount)

	found, err = store.SetCardClubStatus(ctx, "250001-john-smith", false)
	require.NoError(t, err)
	require.True(t, found)

	detail, err = store.GetPlayer(ctx, "john-smith")
	require.NoError(t, err)
	require.False(t, detail.AnyInClub)
	require.Equal(t, int64(0), detail.InClubCount)
}

func TestSetCardClubStatusMissingCard(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()

	found, err := store.SetCardClubStatus(context.Background(), "no-such-card", true)
	require.NoError(t, err)
	require.False(t, found)
}
