package collection

import (
	"cmp"
	"context"
	"database/sql"
	"slices"
	"time"

	"pastpresent-backend/services/collection/db"
)

// base card versions in election order, most preferred first.
var baseCardPriority = []string{"Common", "Rare", "UT Heroes", "Icon"}

func priorityIndex(version string) int {
	for i, v := range baseCardPriority {
		if v == version {
			return i
		}
	}
	return -1
}

func electBaseCard(cards []db.PlayerCard) db.PlayerCard {
	var preferred []db.PlayerCard
	for _, c := range cards {
		if priorityIndex(c.Version) >= 0 {
			preferred = append(preferred, c)
		}
	}

	if len(preferred) > 0 {
		slices.SortFunc(preferred, func(a, b db.PlayerCard) int {
			if c := cmp.Compare(priorityIndex(a.Version), priorityIndex(b.Version)); c != 0 {
				return c
			}
			return cmp.Compare(a.CardSlug, b.CardSlug)
		})
		return preferred[0]
	}

	rest := slices.Clone(cards)
	slices.SortFunc(rest, func(a, b db.PlayerCard) int {
		if c := cmp.Compare(a.Rating, b.Rating); c != 0 {
			return c
		}
		return cmp.Compare(a.CardSlug, b.CardSlug)
	})
	return rest[0]
}

func baseCardMatches(p db.Player, c db.PlayerCard) bool {
	return p.BaseCardSlug.Valid && p.BaseCardSlug.String == c.CardSlug &&
		p.BaseCardRating.Valid && p.BaseCardRating.Int64 == c.Rating &&
		p.BaseCardVersion.Valid && p.BaseCardVersion.String == c.Version &&
		p.BaseCardImageUrl == c.ImageUrl
}

// AssignBaseCards elects one representative card per player and stores a
// snapshot of it on the player row. players with no cards are left alone.
// returns the number of players whose snapshot actually changed.
func (s Store) AssignBaseCards(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "AssignBaseCards")
	defer span.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	players, err := txqry.GetAllPlayers(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().Unix()

	var updated int64
	for _, player := range players {
		cards, err := txqry.GetCardsByPlayer(ctx, player.ID)
		if err != nil {
			return 0, err
		}
		if len(cards) == 0 {
			continue
		}

		base := electBaseCard(cards)
		if baseCardMatches(player, base) {
			continue
		}

		err = txqry.UpdatePlayerBaseCard(ctx, db.UpdatePlayerBaseCardParams{
			BaseCardSlug:     sql.NullString{String: base.CardSlug, Valid: true},
			BaseCardRating:   sql.NullInt64{Int64: base.Rating, Valid: true},
			BaseCardVersion:  sql.NullString{String: base.Version, Valid: true},
			BaseCardImageUrl: base.ImageUrl,
			UpdatedAt:        now,
			ID:               player.ID,
		})
		if err != nil {
			return 0, err
		}
		updated++
	}

	return updated, tx.Commit()
}
