package mockserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recipenest/client-go/internal/types"
)

func (s *Server) handleListRecipes(c *gin.Context) {
	query := s.db
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var recipes []Recipe
	if err := query.Find(&recipes).Error; err != nil {
		detail(c, http.StatusInternalServerError, "Failed to fetch recipes")
		return
	}

	c.JSON(http.StatusOK, toWireList(recipes))
}

func (s *Server) handleSearchRecipes(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		detail(c, http.StatusUnprocessableEntity, "query parameter q is required")
		return
	}

	like := "%" + strings.ToLower(q) + "%"
	var recipes []Recipe
	err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(ingredients) LIKE ?", like, like).
		Find(&recipes).Error
	if err != nil {
		detail(c, http.StatusInternalServerError, "Failed to search recipes")
		return
	}

	c.JSON(http.StatusOK, toWireList(recipes))
}

func (s *Server) handleGetRecipe(c *gin.Context) {
	id := c.Param("id")
	var recipe Recipe
	if err := s.db.First(&recipe, "id = ?", id).Error; err != nil {
		detail(c, http.StatusNotFound, "Recipe not found")
		return
	}

	c.JSON(http.StatusOK, toWire(recipe))
}

func (s *Server) handleCreateRecipe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		detail(c, http.StatusUnauthorized, "User not found")
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || len(req.Ingredients) == 0 || len(req.Steps) == 0 || req.Image == "" {
		detail(c, http.StatusUnprocessableEntity, "name, ingredients, steps and image are required")
		return
	}

	recipe := Recipe{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Category:    string(req.Category),
		Ingredients: JSONStringArray(req.Ingredients),
		Steps:       JSONStringArray(req.Steps),
		CookingTime: req.CookingTime,
		Difficulty:  string(req.Difficulty),
		Image:       req.Image,
		CreatedBy:   user.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.db.Create(&recipe).Error; err != nil {
		detail(c, http.StatusInternalServerError, "Failed to create recipe")
		return
	}

	c.JSON(http.StatusOK, toWire(recipe))
}

func toWire(r Recipe) types.Recipe {
	created := r.CreatedAt
	return types.Recipe{
		ID:          r.ID,
		Name:        r.Name,
		Category:    types.Category(r.Category),
		Ingredients: []string(r.Ingredients),
		Steps:       []string(r.Steps),
		CookingTime: r.CookingTime,
		Difficulty:  types.Difficulty(r.Difficulty),
		Image:       r.Image,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   &created,
	}
}

func toWireList(recipes []Recipe) []types.Recipe {
	out := make([]types.Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = toWire(r)
	}
	return out
}
