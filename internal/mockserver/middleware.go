package mockserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/recipenest/client-go/internal/types"
)

// userKey is the gin context key the authenticated user is stored under.
const userKey = "current_user"

// requireAuth validates the bearer token and loads the account it was
// issued for into the request context.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			detail(c, http.StatusUnauthorized, "Invalid authentication credentials")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			detail(c, http.StatusUnauthorized, "Invalid authentication credentials")
			c.Abort()
			return
		}

		var claims types.TokenClaims
		token, err := jwt.ParseWithClaims(parts[1], &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.jwtSecret, nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				detail(c, http.StatusUnauthorized, "Token has expired")
			} else {
				detail(c, http.StatusUnauthorized, "Could not validate credentials")
			}
			c.Abort()
			return
		}
		if !token.Valid || claims.UserID == "" {
			detail(c, http.StatusUnauthorized, "Could not validate credentials")
			c.Abort()
			return
		}

		var user User
		if err := s.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			detail(c, http.StatusUnauthorized, "User not found")
			c.Abort()
			return
		}

		c.Set(userKey, &user)
		c.Next()
	}
}

func currentUser(c *gin.Context) (*User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*User)
	return user, ok
}
