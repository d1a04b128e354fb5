package auth

import (
	"time"

	"github.com/gdugdh24/lifestyle-connect/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenUseCase issues and verifies the bearer tokens that identify a viewer.
// Sign-in itself happens outside this service.
type TokenUseCase struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenUseCase(secret string, ttl time.Duration) *TokenUseCase {
	return &TokenUseCase{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a signed token for userID
func (uc *TokenUseCase) Issue(userID int) (string, time.Time, error) {
	now := uc.now()
	expiresAt := now.Add(uc.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
		"iat":     now.Unix(),
	})

	tokenString, err := token.SignedString(uc.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// VerifyToken verifies JWT token and returns user ID
func (uc *TokenUseCase) VerifyToken(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return uc.secret, nil
	}, jwt.WithTimeFunc(uc.now))

	if err != nil || !token.Valid {
		return 0, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return 0, domain.ErrInvalidToken
	}

	return int(userID), nil
}
