package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/QuangTung97/event-checkout/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims Claims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	assert.Equal(t, nil, err)
	return token
}

func newClaims(subject string, expiresAt time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    "identity",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: "alice@example.com",
	}
}

func newRequest(token string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/v1/checkout/intents", nil)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

func TestJWTResolver__Valid(t *testing.T) {
	resolver := NewJWTResolver(config.AuthConfig{JWTSecret: "secret", Issuer: "identity"})
	token := signToken(t, jwt.SigningMethodHS256, []byte("secret"), newClaims("user-1", time.Now().Add(time.Hour)))

	id, err := resolver.Resolve(newRequest(token))
	assert.Equal(t, nil, err)
	assert.Equal(t, Identity{UserID: "user-1", Email: "alice@example.com"}, id)
}

func TestJWTResolver__Errors(t *testing.T) {
	resolver := NewJWTResolver(config.AuthConfig{JWTSecret: "secret", Issuer: "identity"})

	_, err := resolver.Resolve(newRequest(""))
	assert.Equal(t, ErrMissingToken, err)

	expired := signToken(t, jwt.SigningMethodHS256, []byte("secret"), newClaims("user-1", time.Now().Add(-time.Hour)))
	_, err = resolver.Resolve(newRequest(expired))
	assert.ErrorIs(t, err, ErrInvalidToken)

	wrongKey := signToken(t, jwt.SigningMethodHS256, []byte("other"), newClaims("user-1", time.Now().Add(time.Hour)))
	_, err = resolver.Resolve(newRequest(wrongKey))
	assert.ErrorIs(t, err, ErrInvalidToken)

	wrongAlg := signToken(t, jwt.SigningMethodHS512, []byte("secret"), newClaims("user-1", time.Now().Add(time.Hour)))
	_, err = resolver.Resolve(newRequest(wrongAlg))
	assert.ErrorIs(t, err, ErrInvalidToken)

	noSubject := signToken(t, jwt.SigningMethodHS256, []byte("secret"), newClaims("", time.Now().Add(time.Hour)))
	_, err = resolver.Resolve(newRequest(noSubject))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIdentity_Context(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.Equal(t, false, ok)

	ctx := ToContext(context.Background(), Identity{UserID: "user-1"})
	id, ok := FromContext(ctx)
	assert.Equal(t, true, ok)
	assert.Equal(t, "user-1", id.UserID)
}
