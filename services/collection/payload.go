package collection

// CardPayload is the unit of work handed to the upsert engine.
// it is never persisted directly.
type CardPayload struct {
	PlayerSlug  string
	DisplayName string
	CardSlug    string
	Name        string
	Rating      int64
	Version     string
	CardUrl     string
	ImageUrl    string
	InClub      bool
}
