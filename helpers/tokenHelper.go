package helpers

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Access tokens live for one hour; clients re-request /jwt after that.
const TokenTTL = time.Hour

var ErrInvalidToken = errors.New("token is invalid or expired")

// TokenHelper signs and verifies the HS256 bearer tokens issued by POST /jwt.
type TokenHelper struct {
	secret []byte
}

func NewTokenHelper(secret string) *TokenHelper {
	return &TokenHelper{secret: []byte(secret)}
}

// SignToken signs the caller-supplied payload (typically {"email": ...}) with
// the fixed expiry. The payload is carried as-is in the claims.
func (h *TokenHelper) SignToken(payload map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for key, value := range payload {
		claims[key] = value
	}
	claims["exp"] = time.Now().Add(TokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

// ValidateToken checks the signature and expiry and returns the decoded
// claims.
func (h *TokenHelper) ValidateToken(signedToken string) (jwt.MapClaims, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		jwt.MapClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return h.secret, nil
		},
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// CallerEmail extracts the email claim, empty if absent.
func CallerEmail(claims jwt.MapClaims) string {
	email, _ := claims["email"].(string)
	return email
}
