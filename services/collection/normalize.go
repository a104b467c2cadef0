package collection

import (
	"context"
	"time"

	"pastpresent-backend/lib/textutil"
	"pastpresent-backend/services/collection/db"
)

// NormalizeDisplayNames finds display names shared by more than one player
// and rewrites each colliding player's name from its slug, so "john-smith"
// and "john-smith-2" stop both reading "John Smith". returns the number of
// players renamed.
func (s Store) NormalizeDisplayNames(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "NormalizeDisplayNames")
	defer span.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	names, err := txqry.GetDuplicateDisplayNames(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().Unix()

	var updated int64
	for _, name := range names {
		players, err := txqry.GetPlayersByDisplayName(ctx, name)
		if err != nil {
			return 0, err
		}

		for _, player := range players {
			pretty := textutil.TitleFromSlug(player.Slug)
			if pretty == player.DisplayName {
				continue
			}

			err = txqry.UpdatePlayerDisplayName(ctx, db.UpdatePlayerDisplayNameParams{
				DisplayName: pretty,
				UpdatedAt:   now,
				ID:          player.ID,
			})
			if err != nil {
				return 0, err
			}
			updated++
		}
	}

	return updated, tx.Commit()
}
