package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/recipenest/client-go/internal/apierror"
	"github.com/recipenest/client-go/internal/types"
)

// FavoriteService manages the current user's favorites. Every operation
// requires a stored session and fails with ErrAuthRequired, before any
// network call, when there is none.
type FavoriteService struct {
	client *Client
}

// List returns the recipes favorited by the current user.
func (s *FavoriteService) List(ctx context.Context) ([]types.Recipe, error) {
	var recipes []types.Recipe
	if err := s.client.do(ctx, http.MethodGet, "/api/favorites", nil, nil, &recipes, true); err != nil {
		return nil, err
	}
	for i := range recipes {
		if err := recipes[i].CheckWire(); err != nil {
			return nil, &apierror.SchemaError{Path: "/api/favorites", Err: err}
		}
	}
	return recipes, nil
}

// Add marks a recipe as a favorite. The server deduplicates, so adding an
// existing favorite is a no-op rather than a duplicate relation.
func (s *FavoriteService) Add(ctx context.Context, recipeID string) error {
	if strings.TrimSpace(recipeID) == "" {
		return &apierror.ValidationError{Field: "recipe id", Message: "must not be empty"}
	}
	body := types.FavoriteRequest{RecipeID: recipeID}
	return s.client.do(ctx, http.MethodPost, "/api/favorites", nil, body, nil, true)
}

// Remove deletes the favorite relation for recipeID. Removing a recipe
// that was never favorited fails with ErrNotFound.
func (s *FavoriteService) Remove(ctx context.Context, recipeID string) error {
	if strings.TrimSpace(recipeID) == "" {
		return &apierror.ValidationError{Field: "recipe id", Message: "must not be empty"}
	}
	return s.client.do(ctx, http.MethodDelete, "/api/favorites/"+recipeID, nil, nil, nil, true)
}

// IsFavorite reports whether recipeID is in the favorites list as of this
// call. The answer is a point-in-time snapshot, not a live subscription.
func (s *FavoriteService) IsFavorite(ctx context.Context, recipeID string) (bool, error) {
	favorites, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, r := range favorites {
		if r.ID == recipeID {
			return true, nil
		}
	}
	return false, nil
}
