package collection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pastpresent-backend/services/collection/db"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/collection")

type Store struct {
	db  *sql.DB
	qry *db.Queries
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:  database,
		qry: db.New(database),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// UpsertCards reconciles one scraped batch in a single transaction:
// missing players are created, cards are inserted or updated, and every
// touched player's any_in_club flag is recomputed from its full card set.
// re-running the same batch leaves the store unchanged apart from
// last_seen_at.
func (s Store) UpsertCards(ctx context.Context, payloads []CardPayload) error {
	if len(payloads) == 0 {
		return nil
	}

	ctx, span := tracer.Start(ctx, "UpsertCards")
	defer span.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	now := time.Now().Unix()

	err = ensurePlayers(ctx, txqry, payloads, now)
	if err != nil {
		return err
	}
	err = upsertCards(ctx, txqry, payloads, now)
	if err != nil {
		return err
	}
	err = refreshAnyInClub(ctx, txqry, payloads, now)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func playerSlugs(payloads []CardPayload) []string {
	seen := map[string]bool{}
	var slugs []string
	for _, p := range payloads {
		key := strings.ToLower(p.PlayerSlug)
		if seen[key] {
			continue
		}
		seen[key] = true
		slugs = append(slugs, p.PlayerSlug)
	}
	return slugs
}

func ensurePlayers(ctx context.Context, qry *db.Queries, payloads []CardPayload, now int64) error {
	existing, err := qry.GetExistingPlayerSlugs(ctx, playerSlugs(payloads))
	if err != nil {
		return err
	}

	seen := map[string]bool{}
	for _, slug := range existing {
		seen[strings.ToLower(slug)] = true
	}

	// the first payload's display name wins for a slug new to this batch.
	// an existing row wins over a freshly scraped name; only the
	// normalization pass ever rewrites names afterwards.
	for _, p := range payloads {
		key := strings.ToLower(p.PlayerSlug)
		if seen[key] {
			continue
		}
		seen[key] = true

		err := qry.CreatePlayer(ctx, db.CreatePlayerParams{
			Slug:        p.PlayerSlug,
			DisplayName: p.DisplayName,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func playerIdsForPayloads(ctx context.Context, qry *db.Queries, payloads []CardPayload) (map[string]int64, error) {
	rows, err := qry.GetPlayerIdsBySlugs(ctx, playerSlugs(payloads))
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(rows))
	for _, r := range rows {
		ids[strings.ToLower(r.Slug)] = r.ID
	}
	return ids, nil
}

func upsertCards(ctx context.Context, qry *db.Queries, payloads []CardPayload, now int64) error {
	// the last payload for a card slug wins
	idx := map[string]int{}
	var unique []CardPayload
	for _, p := range payloads {
		if i, ok := idx[p.CardSlug]; ok {
			unique[i] = p
			continue
		}
		idx[p.CardSlug] = len(unique)
		unique = append(unique, p)
	}

	ids, err := playerIdsForPayloads(ctx, qry, payloads)
	if err != nil {
		return err
	}

	for _, p := range unique {
		playerId, ok := ids[strings.ToLower(p.PlayerSlug)]
		if !ok {
			return fmt.Errorf("no player row for slug %q", p.PlayerSlug)
		}

		err := qry.UpsertCard(ctx, db.UpsertCardParams{
			PlayerID:   playerId,
			CardSlug:   p.CardSlug,
			Name:       p.Name,
			Rating:     p.Rating,
			Version:    p.Version,
			CardUrl:    p.CardUrl,
			ImageUrl:   nullString(p.ImageUrl),
			InClub:     p.InClub,
			ScrapedAt:  now,
			LastSeenAt: now,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func refreshAnyInClub(ctx context.Context, qry *db.Queries, payloads []CardPayload, now int64) error {
	ids, err := playerIdsForPayloads(ctx, qry, payloads)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	idList := make([]int64, 0, len(ids))
	for _, id := range ids {
		idList = append(idList, id)
	}
	return qry.RefreshAnyInClub(ctx, db.RefreshAnyInClubParams{
		UpdatedAt: now,
		Ids:       idList,
	})
}

// SetCardClubStatus flips a card's owned flag and refreshes the owning
// player's aggregate in the same transaction. returns false without any
// writes when no such card exists.
func (s Store) SetCardClubStatus(ctx context.Context, cardSlug string, inClub bool) (bool, error) {
	ctx, span := tracer.Start(ctx, "SetCardClubStatus")
	defer span.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	card, err := txqry.GetCardBySlug(ctx, cardSlug)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = txqry.SetCardInClub(ctx, db.SetCardInClubParams{
		InClub: inClub,
		ID:     card.ID,
	})
	if err != nil {
		return false, err
	}

	err = txqry.RefreshAnyInClub(ctx, db.RefreshAnyInClubParams{
		UpdatedAt: time.Now().Unix(),
		Ids:       []int64{card.PlayerID},
	})
	if err != nil {
		return false, err
	}

	return true, tx.Commit()
}
