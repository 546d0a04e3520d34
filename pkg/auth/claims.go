package auth

import (
	"github.com/adiwijaya/warungpos-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenPayload captures the data available when minting a token.
type SessionTokenPayload struct {
	UserID   string
	Username string
	Name     string
	Role     enums.UserRole
}

// SessionTokenClaims represents the typed JWT handed to the terminal after a
// successful username lookup. There is no password behind it; the token only
// pins who is operating the till for the session.
type SessionTokenClaims struct {
	UserID   string         `json:"user_id"`
	Username string         `json:"username"`
	Name     string         `json:"name"`
	Role     enums.UserRole `json:"role"`
	jwt.RegisteredClaims
}
