package server

import "pastpresent-backend/services/collection"

type PlayerListItem struct {
	Slug             string `json:"slug"`
	DisplayName      string `json:"display_name"`
	AnyInClub        bool   `json:"any_in_club"`
	BaseCardRating   *int64 `json:"base_card_rating"`
	BaseCardVersion  string `json:"base_card_version,omitempty"`
	BaseCardImageUrl string `json:"base_card_image_url,omitempty"`
	TotalCards       int64  `json:"total_cards"`
	InClubCount      int64  `json:"in_club_count"`
}

type PlayerListResponse struct {
	Players []PlayerListItem `json:"players"`
}

type CardResponse struct {
	CardSlug string `json:"card_slug"`
	Name     string `json:"name"`
	Rating   int64  `json:"rating"`
	Version  string `json:"version"`
	CardUrl  string `json:"card_url"`
	ImageUrl string `json:"image_url,omitempty"`
	InClub   bool   `json:"in_club"`
}

type PlayerDetailResponse struct {
	Slug        string         `json:"slug"`
	DisplayName string         `json:"display_name"`
	AnyInClub   bool           `json:"any_in_club"`
	TotalCards  int64          `json:"total_cards"`
	InClubCount int64          `json:"in_club_count"`
	Cards       []CardResponse `json:"cards"`
}

type SetClubStatusRequest struct {
	InClub *bool `json:"in_club"`
}

type TriggerScrapeResponse struct {
	Status  string `json:"status"`
	Started bool   `json:"started"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toPlayerList(players []collection.PlayerSummary) PlayerListResponse {
	out := PlayerListResponse{Players: make([]PlayerListItem, 0, len(players))}
	for _, p := range players {
		out.Players = append(out.Players, PlayerListItem{
			Slug:             p.Slug,
			DisplayName:      p.DisplayName,
			AnyInClub:        p.AnyInClub,
			BaseCardRating:   p.BaseCardRating,
			BaseCardVersion:  p.BaseCardVersion,
			BaseCardImageUrl: p.BaseCardImageUrl,
			TotalCards:       p.TotalCards,
			InClubCount:      p.InClubCount,
		})
	}
	return out
}

func toPlayerDetail(detail collection.PlayerDetail) PlayerDetailResponse {
	out := PlayerDetailResponse{
		Slug:        detail.Slug,
		DisplayName: detail.DisplayName,
		AnyInClub:   detail.AnyInClub,
		TotalCards:  detail.TotalCards,
		InClubCount: detail.InClubCount,
		Cards:       make([]CardResponse, 0, len(detail.Cards)),
	}
	for _, c := range detail.Cards {
		out.Cards = append(out.Cards, CardResponse{
			CardSlug: c.CardSlug,
			Name:     c.Name,
			Rating:   c.Rating,
			Version:  c.Version,
			CardUrl:  c.CardUrl,
			ImageUrl: c.ImageUrl,
			InClub:   c.InClub,
		})
	}
	return out
}
