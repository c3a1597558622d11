package authentication

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dr-lamia/med-nexus-portal/configuration"
	"github.com/dr-lamia/med-nexus-portal/models"
)

// GenerateSessionToken signs a token tying the JWT to a stored session, so
// logout can invalidate the token before it expires.
func GenerateSessionToken(sessionID string, user models.SessionUser) (string, error) {
	claims := &models.SessionClaims{
		SessionID: sessionID,
		UserID:    user.ID,
		Email:     user.Email,
		UserType:  user.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(configuration.JWTSecret())
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// AuthenticateSessionToken parses and validates a session token and returns
// its claims.
func AuthenticateSessionToken(signedStringToken string) (*models.SessionClaims, error) {
	var sessionClaims models.SessionClaims
	token, err := jwt.ParseWithClaims(signedStringToken, &sessionClaims, func(token *jwt.Token) (interface{}, error) {
		return configuration.JWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok {
		return nil, errors.New("couldn't parse claims")
	}
	return claims, nil
}
