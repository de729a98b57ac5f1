package responses

// IdentitySummary is the populated participant shape embedded in listings.
type IdentitySummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
