package futgg

// Card is one card entry scraped off a listing page.
type Card struct {
	PlayerSlug  string
	DisplayName string
	CardSlug    string
	Name        string
	Rating      int64
	Version     string
	CardUrl     string
	ImageUrl    string
}
