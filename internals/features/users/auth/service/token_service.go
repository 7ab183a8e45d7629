package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	authModel "jebshit_backend/internals/features/users/auth/model"
)

const (
	AccessTTL  = 24 * time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// SessionClaims is what every authenticated request carries: identifier,
// email and the (currently uniform) role.
type SessionClaims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func CreateAccessToken(secret string, u *authModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"sub":       u.UserID.String(),
		"email":     u.UserEmail,
		"role":      u.UserRole,
		"user_name": u.UserName,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(AccessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func CreateRefreshToken(secret string, userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(RefreshTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and extracts the session claims.
func ParseToken(secret, tokenString string) (*SessionClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(strings.TrimSpace(sub))
	if err != nil {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return &SessionClaims{UserID: id, Email: email, Role: role}, nil
}
