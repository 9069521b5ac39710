package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims carried by an access token. The server signs
// these with HS256; tokens expire seven days after issue.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}
