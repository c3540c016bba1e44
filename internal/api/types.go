package api

// GenerateCocktailRequest is the body of POST /api/generate-cocktail. Prompt
// is a pointer so a missing field is rejected while an empty string is not.
type GenerateCocktailRequest struct {
	Prompt *string `json:"prompt" binding:"required"`
}

// GenerateCocktailResponse carries the generated recipe text
type GenerateCocktailResponse struct {
	Cocktail string `json:"cocktail"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	Cocktails int    `json:"cocktails"`
}
