package token

import (
	"strings"

	"github.com/google/uuid"
)

// Tokens for one registration
type Tokens struct {
	CheckIn  string
	Transfer string
}

// Issuer generates random tokens, uniqueness is enforced by the store
type Issuer struct {
	newToken func() string
}

// NewIssuer ...
func NewIssuer() *Issuer {
	return &Issuer{newToken: randomToken}
}

// NewIssuerWithFunc for deterministic tokens in tests
func NewIssuerWithFunc(fn func() string) *Issuer {
	return &Issuer{newToken: fn}
}

func randomToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// Issue returns two independent tokens
func (i *Issuer) Issue() Tokens {
	return Tokens{
		CheckIn:  i.newToken(),
		Transfer: i.newToken(),
	}
}

// NewTransferToken replaces a consumed transfer token
func (i *Issuer) NewTransferToken() string {
	return i.newToken()
}
