package futgg

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"pastpresent-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// SiteRoot is what relative card and image urls resolve against.
const SiteRoot = "https://www.fut.gg"

var siteRootUrl, _ = url.Parse(SiteRoot)

var errSkipEntry = errors.New("skip entry")

var numericPrefix = regexp.MustCompile(`^\d+-`)

// DerivePlayerSlug strips the leading numeric id off a card's first path
// segment, e.g. "231443-ousmane-dembele" -> "ousmane-dembele". a segment
// without a numeric prefix passes through unchanged.
func DerivePlayerSlug(segment string) string {
	return numericPrefix.ReplaceAllString(segment, "")
}

// ParseCards turns a listing page into card entries. entries with broken
// markup are skipped, duplicate card slugs within the page keep their
// first occurrence. only an unreadable document is an error.
func ParseCards(page string) ([]Card, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse listing page: %w", err)
	}

	seen := map[string]bool{}
	var cards []Card

	doc.Find("a[href^='/players/']").Each(func(_ int, anchor *goquery.Selection) {
		card, err := parseAnchor(anchor)
		if err != nil {
			return
		}
		if seen[card.CardSlug] {
			return
		}
		seen[card.CardSlug] = true
		cards = append(cards, card)
	})

	return cards, nil
}

func parseAnchor(anchor *goquery.Selection) (Card, error) {
	href := anchor.AttrOr("href", "")
	if href == "" {
		return Card{}, errSkipEntry
	}

	parts := strings.Split(strings.Trim(href, "/"), "/")
	if len(parts) < 3 || parts[0] != "players" {
		return Card{}, errSkipEntry
	}
	cardSlug := strings.Join(parts[1:], "/")
	playerSlug := DerivePlayerSlug(parts[1])

	img := anchor.Find("img[alt]").First()
	if img.Length() == 0 {
		return Card{}, errSkipEntry
	}

	name, rating, version, err := splitAltText(strings.TrimSpace(img.AttrOr("alt", "")))
	if err != nil {
		return Card{}, err
	}

	rawImageUrl := img.AttrOr("src", "")
	if rawImageUrl == "" {
		rawImageUrl = img.AttrOr("data-src", "")
	}
	if rawImageUrl == "" {
		return Card{}, errSkipEntry
	}

	return Card{
		PlayerSlug:  playerSlug,
		DisplayName: name,
		CardSlug:    cardSlug,
		Name:        name,
		Rating:      rating,
		Version:     version,
		CardUrl:     htmlutil.ResolveUrl(siteRootUrl, href),
		ImageUrl:    htmlutil.ResolveUrl(siteRootUrl, rawImageUrl),
	}, nil
}

// alt values look like "Marc Cucurella - 85 - Ratings Reload". the tail is
// rejoined so edition names containing " - " survive.
func splitAltText(alt string) (name string, rating int64, version string, err error) {
	var parts []string
	for _, part := range strings.Split(alt, " - ") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) < 3 {
		return "", 0, "", errSkipEntry
	}

	rating, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", 0, "", errSkipEntry
	}

	return parts[0], rating, strings.Join(parts[2:], " - "), nil
}
