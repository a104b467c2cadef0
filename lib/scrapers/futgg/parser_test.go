package futgg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const listingPage = `
<html><body>
<div class="grid">
  <a href="/players/231443-ousmane-dembele/26-50563091/">
    <img alt="Ousmane Dembélé - 90 - Rare" src="/content/cards/26-50563091.png">
  </a>
  <a href="/players/258004-marc-cucurella/26-50512345/">
    <img alt="Marc Cucurella - 85 - Ratings Reload" data-src="https://cdn.fut.gg/cards/26-50512345.png">
  </a>
  <a href="/players/ronaldo/26-legacy-7/">
    <img alt="Ronaldo - 94 - Icon - Prime" src="/content/cards/icon-7.png">
  </a>

  <!-- duplicate of the first card, first occurrence wins -->
  <a href="/players/231443-ousmane-dembele/26-50563091/">
    <img alt="Ousmane Dembélé - 90 - Rare" src="/content/cards/other.png">
  </a>

  <!-- malformed entries, all skipped -->
  <a href="/players/262531-claudia-pina/">
    <img alt="Claudia Pina - 88 - Common" src="/content/cards/x.png">
  </a>
  <a href="/players/100-no-image/26-1/"></a>
  <a href="/players/101-no-alt/26-2/"><img src="/content/cards/y.png"></a>
  <a href="/players/102-bad-rating/26-3/">
    <img alt="Someone - eighty - Common" src="/content/cards/z.png">
  </a>
  <a href="/players/103-short-alt/26-4/">
    <img alt="Someone - 80" src="/content/cards/w.png">
  </a>
  <a href="/other/303-not-a-player/26-5/">
    <img alt="Not A Player - 80 - Common" src="/content/cards/v.png">
  </a>
</div>
</body></html>`

func TestParseCards(t *testing.T) {
	cards, err := ParseCards(listingPage)
	require.NoError(t, err)

	want := []Card{
		{
			PlayerSlug:  "ousmane-dembele",
			DisplayName: "Ousmane Dembélé",
			CardSlug:    "231443-ousmane-dembele/26-50563091",
			Name:        "Ousmane Dembélé",
			Rating:      90,
			Version:     "Rare",
			CardUrl:     "https://www.fut.gg/players/231443-ousmane-dembele/26-50563091/",
			ImageUrl:    "https://www.fut.gg/content/cards/26-50563091.png",
		},
		{
			PlayerSlug:  "marc-cucurella",
			DisplayName: "Marc Cucurella",
			CardSlug:    "258004-marc-cucurella/26-50512345",
			Name:        "Marc Cucurella",
			Rating:      85,
			Version:     "Ratings Reload",
			CardUrl:     "https://www.fut.gg/players/258004-marc-cucurella/26-50512345/",
			ImageUrl:    "https://cdn.fut.gg/cards/26-50512345.png",
		},
		{
			PlayerSlug:  "ronaldo",
			DisplayName: "Ronaldo",
			CardSlug:    "ronaldo/26-legacy-7",
			Name:        "Ronaldo",
			Rating:      94,
			Version:     "Icon - Prime",
			CardUrl:     "https://www.fut.gg/players/ronaldo/26-legacy-7/",
			ImageUrl:    "https://www.fut.gg/content/cards/icon-7.png",
		},
	}
	if diff := cmp.Diff(want, cards); diff != "" {
		t.Fatalf("parsed cards mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCardsEmptyPage(t *testing.T) {
	cards, err := ParseCards("<html><body><p>nothing here</p></body></html>")
	require.NoError(t, err)
	require.Empty(t, cards)
}

func TestDerivePlayerSlug(t *testing.T) {
	require.Equal(t, "ousmane-dembele", DerivePlayerSlug("231443-ousmane-dembele"))
	require.Equal(t, "ronaldo", DerivePlayerSlug("ronaldo"))
	require.Equal(t, "claudia-pina", DerivePlayerSlug("262531-claudia-pina"))
}

func TestSplitAltTextRoundTrip(t *testing.T) {
	name, rating, version, err := splitAltText("Ronaldo - 94 - Icon - Prime")
	require.NoError(t, err)
	require.Equal(t, "Ronaldo - 94 - Icon - Prime",
		name+" - "+"94"+" - "+version)
	require.Equal(t, int64(94), rating)
}
