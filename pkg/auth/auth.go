package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/QuangTung97/event-checkout/config"
	"github.com/golang-jwt/jwt/v5"
)

//go:generate moq -out auth_mocks.go . Resolver

var (
	// ErrMissingToken ...
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken ...
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Identity of the current user
type Identity struct {
	UserID string
	Email  string
}

// Resolver resolves the identity of an incoming request
type Resolver interface {
	Resolve(r *http.Request) (Identity, error)
}

// Claims issued by the identity provider, the subject is the user id
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWTResolver verifies HS256 bearer tokens
type JWTResolver struct {
	secret []byte
	issuer string
}

var _ Resolver = &JWTResolver{}

// NewJWTResolver ...
func NewJWTResolver(conf config.AuthConfig) *JWTResolver {
	return &JWTResolver{
		secret: []byte(conf.JWTSecret),
		issuer: conf.Issuer,
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(header[len(prefix):]), nil
}

// Resolve ...
func (j *JWTResolver) Resolve(r *http.Request) (Identity, error) {
	raw, err := bearerToken(r)
	if err != nil {
		return Identity{}, err
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if j.issuer != "" {
		options = append(options, jwt.WithIssuer(j.issuer))
	}

	var claims Claims
	_, err = jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		return j.secret, nil
	}, options...)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.ExpiresAt == nil {
		return Identity{}, fmt.Errorf("%w: missing expiration", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return Identity{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	return Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}

type identityKeyType struct{}

var identityKey = identityKeyType{}

// ToContext ...
func ToContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext ...
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
