package collection

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pastpresent-backend/lib/textutil"
)

var ErrPlayerNotFound = errors.New("player not found")

type ClubFilter string

const (
	ClubFilterAll       ClubFilter = "all"
	ClubFilterInClub    ClubFilter = "in_club"
	ClubFilterNotInClub ClubFilter = "not_in_club"
)

type RatingSort string

const (
	RatingSortDesc RatingSort = "desc"
	RatingSortAsc  RatingSort = "asc"
)

type ListOptions struct {
	// Search matches against display names, ignoring case and accents.
	Search string
	Club   ClubFilter
	Sort   RatingSort
}

type PlayerSummary struct {
	Slug             string
	DisplayName      string
	AnyInClub        bool
	BaseCardRating   *int64
	BaseCardVersion  string
	BaseCardImageUrl string
	TotalCards       int64
	InClubCount      int64
}

type Card struct {
	CardSlug string
	Name     string
	Rating   int64
	Version  string
	CardUrl  string
	ImageUrl string
	InClub   bool
}

type PlayerDetail struct {
	Slug        string
	DisplayName string
	AnyInClub   bool
	TotalCards  int64
	InClubCount int64
	Cards       []Card
}

// ListPlayers returns player summaries sorted by base card rating, players
// without a base card last. filtering happens after the fetch so the search
// can fold case and diacritics.
func (s Store) ListPlayers(ctx context.Context, opts ListOptions) ([]PlayerSummary, error) {
	ctx, span := tracer.Start(ctx, "ListPlayers")
	defer span.End()

	var summaries []PlayerSummary
	if opts.Sort == RatingSortAsc {
		rows, err := s.qry.ListPlayersByRatingAsc(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			summaries = append(summaries, PlayerSummary{
				Slug:             r.Slug,
				DisplayName:      r.DisplayName,
				AnyInClub:        r.AnyInClub,
				BaseCardRating:   nullableInt(r.BaseCardRating),
				BaseCardVersion:  r.BaseCardVersion.String,
				BaseCardImageUrl: r.BaseCardImageUrl.String,
				TotalCards:       r.TotalCards,
				InClubCount:      r.InClubCount,
			})
		}
	} else {
		rows, err := s.qry.ListPlayersByRatingDesc(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			summaries = append(summaries, PlayerSummary{
				Slug:             r.Slug,
				DisplayName:      r.DisplayName,
				AnyInClub:        r.AnyInClub,
				BaseCardRating:   nullableInt(r.BaseCardRating),
				BaseCardVersion:  r.BaseCardVersion.String,
				BaseCardImageUrl: r.BaseCardImageUrl.String,
				TotalCards:       r.TotalCards,
				InClubCount:      r.InClubCount,
			})
		}
	}

	needle := textutil.FoldSearch(opts.Search)
	filtered := make([]PlayerSummary, 0, len(summaries))
	for _, summary := range summaries {
		if needle != "" && !strings.Contains(textutil.FoldSearch(summary.DisplayName), needle) {
			continue
		}
		switch opts.Club {
		case ClubFilterInClub:
			if !summary.AnyInClub {
				continue
			}
		case ClubFilterNotInClub:
			if summary.AnyInClub {
				continue
			}
		}
		filtered = append(filtered, summary)
	}
	return filtered, nil
}

func nullableInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

// GetPlayer returns one player and its full card set, highest rated first.
func (s Store) GetPlayer(ctx context.Context, slug string) (PlayerDetail, error) {
	ctx, span := tracer.Start(ctx, "GetPlayer")
	defer span.End()

	player, err := s.qry.GetPlayerBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return PlayerDetail{}, ErrPlayerNotFound
	}
	if err != nil {
		return PlayerDetail{}, err
	}

	cards, err := s.qry.GetCardsByPlayer(ctx, player.ID)
	if err != nil {
		return PlayerDetail{}, err
	}

	detail := PlayerDetail{
		Slug:        player.Slug,
		DisplayName: player.DisplayName,
		AnyInClub:   player.AnyInClub,
		TotalCards:  int64(len(cards)),
		Cards:       make([]Card, 0, len(cards)),
	}
	for _, c := range cards {
		if c.InClub {
			detail.InClubCount++
		}
		detail.Cards = append(detail.Cards, Card{
			CardSlug: c.CardSlug,
			Name:     c.Name,
			Rating:   c.Rating,
			Version:  c.Version,
			CardUrl:  c.CardUrl,
			ImageUrl: c.ImageUrl.String,
			InClub:   c.InClub,
		})
	}
	return detail, nil
}
