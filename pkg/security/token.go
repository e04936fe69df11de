package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

var ErrTokenInvalid = errors.New("token is invalid or expired")

// TokenIssuer mints and verifies the short-lived access token and the
// long-lived refresh token. Both are HS256 with separate secrets so a leaked
// refresh secret can't be used to forge access tokens.
type TokenIssuer struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func NewTokenIssuer() *TokenIssuer {
	return &TokenIssuer{
		AccessSecret:  []byte(viper.GetString("jwt.access_secret")),
		RefreshSecret: []byte(viper.GetString("jwt.refresh_secret")),
		AccessTTL:     viper.GetDuration("jwt.access_ttl"),
		RefreshTTL:    viper.GetDuration("jwt.refresh_ttl"),
	}
}

func (t *TokenIssuer) MintAccess(userID string) (string, error) {
	return mint(userID, "access", t.AccessSecret, t.AccessTTL)
}

func (t *TokenIssuer) MintRefresh(userID string) (string, error) {
	return mint(userID, "refresh", t.RefreshSecret, t.RefreshTTL)
}

func (t *TokenIssuer) ParseAccess(token string) (userID string, err error) {
	return parse(token, "access", t.AccessSecret)
}

func (t *TokenIssuer) ParseRefresh(token string) (userID string, err error) {
	return parse(token, "refresh", t.RefreshSecret)
}

func mint(userID, typ string, secret []byte, ttl time.Duration) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"type":    typ,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	})

	return tok.SignedString(secret)
}

func parse(tokenStr, typ string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method: " + t.Method.Alg())
		}

		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}

	if claims["type"] != typ {
		return "", ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrTokenInvalid
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Now().Unix() >= int64(exp) {
		return "", ErrTokenInvalid
	}

	return userID, nil
}
