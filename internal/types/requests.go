package types

// RegisterRequest is the request body for POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the response body of both auth endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// CreateRecipeRequest is the request body for POST /api/recipes. Image is a
// data URI with the photo embedded inline.
type CreateRecipeRequest struct {
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Ingredients []string   `json:"ingredients"`
	Steps       []string   `json:"steps"`
	CookingTime string     `json:"cooking_time"`
	Difficulty  Difficulty `json:"difficulty"`
	Image       string     `json:"image"`
}

// FavoriteRequest is the request body for POST /api/favorites.
type FavoriteRequest struct {
	RecipeID string `json:"recipe_id"`
}

// MessageResponse is the generic acknowledgement body used by the
// favorites endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
