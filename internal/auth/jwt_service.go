package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"contentshare/internal/model"
)

// TokenExpiry is the duration for which issued login tokens are valid.
// The expiry is embedded in the token and recorded on the session slot,
// but the validated path only compares token strings (see SessionStore).
const TokenExpiry = 1 * time.Hour

// Claims represents the JWT claims of a login token.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService mints login tokens.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// Generate issues a signed token bound to the given user.
// It fails with ErrInvalidIdentity when the user is not a persisted identity.
func (s *JWTService) Generate(user *model.User) (string, error) {
	if user == nil || user.ID == 0 {
		return "", ErrInvalidIdentity
	}

	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
