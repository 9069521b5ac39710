package mockserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recipenest/client-go/internal/types"
)

func (s *Server) handleListFavorites(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		detail(c, http.StatusUnauthorized, "User not found")
		return
	}

	var favorites []Favorite
	if err := s.db.Where("user_id = ?", user.ID).Find(&favorites).Error; err != nil {
		detail(c, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	if len(favorites) == 0 {
		c.JSON(http.StatusOK, []types.Recipe{})
		return
	}

	ids := make([]string, len(favorites))
	for i, f := range favorites {
		ids[i] = f.RecipeID
	}

	var recipes []Recipe
	if err := s.db.Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		detail(c, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	c.JSON(http.StatusOK, toWireList(recipes))
}

func (s *Server) handleAddFavorite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		detail(c, http.StatusUnauthorized, "User not found")
		return
	}

	var req types.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RecipeID == "" {
		detail(c, http.StatusUnprocessableEntity, "recipe_id is required")
		return
	}

	// Adding an existing favorite is a no-op, never a duplicate relation.
	var existing Favorite
	err := s.db.Where("user_id = ? AND recipe_id = ?", user.ID, req.RecipeID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, types.MessageResponse{Message: "Already in favorites"})
		return
	}

	fav := Favorite{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		RecipeID:  req.RecipeID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&fav).Error; err != nil {
		detail(c, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Added to favorites"})
}

func (s *Server) handleRemoveFavorite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		detail(c, http.StatusUnauthorized, "User not found")
		return
	}

	recipeID := c.Param("recipe_id")
	result := s.db.Where("user_id = ? AND recipe_id = ?", user.ID, recipeID).Delete(&Favorite{})
	if result.Error != nil {
		detail(c, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}
	if result.RowsAffected == 0 {
		detail(c, http.StatusNotFound, "Favorite not found")
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Removed from favorites"})
}
