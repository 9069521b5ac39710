package mockserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipenest/client-go/internal/types"
)

// tokenTTL matches the real backend: tokens expire seven days after issue.
const tokenTTL = 7 * 24 * time.Hour

func (s *Server) handleRegister(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		detail(c, http.StatusUnprocessableEntity, "name, email and password are required")
		return
	}

	var existing User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		detail(c, http.StatusBadRequest, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		detail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.db.Create(&user).Error; err != nil {
		detail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	s.logger.Info("registered user", zap.String("email", user.Email))
	s.issueToken(c, &user)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		detail(c, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		detail(c, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	s.issueToken(c, &user)
}

func (s *Server) issueToken(c *gin.Context, user *User) {
	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: user.ID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		detail(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, types.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		User:        types.User{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}
