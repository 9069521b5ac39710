package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/recipenest/client-go/internal/apierror"
	"github.com/recipenest/client-go/internal/types"
)

// RecipeService provides typed operations over the recipe catalog. Reads
// are unauthenticated; Create requires a session.
type RecipeService struct {
	client *Client
}

// List fetches all recipes, optionally filtered server-side by category.
// Order is server-defined and not guaranteed stable.
func (s *RecipeService) List(ctx context.Context, category types.Category) ([]types.Recipe, error) {
	if category != "" && !category.Valid() {
		return nil, &apierror.ValidationError{Field: "category", Message: "unknown category"}
	}

	var query url.Values
	if category != "" {
		query = url.Values{"category": {string(category)}}
	}
	return s.fetchList(ctx, "/api/recipes", query)
}

// Search fetches recipes whose name or ingredients match q. A blank query
// falls back to an unfiltered List.
func (s *RecipeService) Search(ctx context.Context, q string) ([]types.Recipe, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.List(ctx, "")
	}
	return s.fetchList(ctx, "/api/recipes/search", url.Values{"q": {q}})
}

// Get fetches one recipe by id, failing with ErrNotFound when the id does
// not exist.
func (s *RecipeService) Get(ctx context.Context, id string) (*types.Recipe, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &apierror.ValidationError{Field: "id", Message: "must not be empty"}
	}

	var recipe types.Recipe
	if err := s.client.do(ctx, http.MethodGet, "/api/recipes/"+id, nil, nil, &recipe, false); err != nil {
		return nil, err
	}
	if err := recipe.CheckWire(); err != nil {
		return nil, &apierror.SchemaError{Path: "/api/recipes/" + id, Err: err}
	}
	return &recipe, nil
}

// Create submits a new recipe with its photo embedded as a data URI. All
// required fields are checked locally before the call; on success the
// server-assigned recipe, including its new id, is returned.
func (s *RecipeService) Create(ctx context.Context, req types.CreateRecipeRequest) (*types.Recipe, error) {
	if err := checkCreate(req); err != nil {
		return nil, err
	}

	var recipe types.Recipe
	if err := s.client.do(ctx, http.MethodPost, "/api/recipes", nil, req, &recipe, true); err != nil {
		return nil, err
	}
	if err := recipe.CheckWire(); err != nil {
		return nil, &apierror.SchemaError{Path: "/api/recipes", Err: err}
	}
	return &recipe, nil
}

// ListMine returns the recipes created by userID. There is no dedicated
// server endpoint; the full catalog is fetched and filtered locally, which
// puts a ceiling on catalog size this can handle.
func (s *RecipeService) ListMine(ctx context.Context, userID string) ([]types.Recipe, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, &apierror.ValidationError{Field: "user id", Message: "must not be empty"}
	}

	all, err := s.List(ctx, "")
	if err != nil {
		return nil, err
	}

	mine := make([]types.Recipe, 0)
	for _, r := range all {
		if r.CreatedBy == userID {
			mine = append(mine, r)
		}
	}
	return mine, nil
}

func (s *RecipeService) fetchList(ctx context.Context, path string, query url.Values) ([]types.Recipe, error) {
	var recipes []types.Recipe
	if err := s.client.do(ctx, http.MethodGet, path, query, nil, &recipes, false); err != nil {
		return nil, err
	}
	for i := range recipes {
		if err := recipes[i].CheckWire(); err != nil {
			return nil, &apierror.SchemaError{Path: path, Err: err}
		}
	}
	return recipes, nil
}

func checkCreate(req types.CreateRecipeRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &apierror.ValidationError{Field: "name", Message: "must not be empty"}
	}
	if !req.Category.Valid() {
		return &apierror.ValidationError{Field: "category", Message: "unknown category"}
	}
	if !req.Difficulty.Valid() {
		return &apierror.ValidationError{Field: "difficulty", Message: "unknown difficulty"}
	}
	if len(nonBlank(req.Ingredients)) == 0 {
		return &apierror.ValidationError{Field: "ingredients", Message: "at least one ingredient required"}
	}
	if len(nonBlank(req.Steps)) == 0 {
		return &apierror.ValidationError{Field: "steps", Message: "at least one step required"}
	}
	if strings.TrimSpace(req.CookingTime) == "" {
		return &apierror.ValidationError{Field: "cooking time", Message: "must not be empty"}
	}
	if strings.TrimSpace(req.Image) == "" {
		return &apierror.ValidationError{Field: "image", Message: "a photo must be attached"}
	}
	return nil
}

func nonBlank(items []string) []string {
	kept := items[:0:0]
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			kept = append(kept, it)
		}
	}
	return kept
}
