package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/artem13815/accounts/pkg/auth"
)

// Token validation failures, ordered by the check that produced them:
// structure, then signature, then expiry, then issuer.
var (
	ErrNoSecret         = errors.New("jwt: signing secret is not configured")
	ErrMalformedToken   = errors.New("jwt: malformed token")
	ErrInvalidSignature = errors.New("jwt: invalid token signature")
	ErrTokenExpired     = errors.New("jwt: token expired")
	ErrWrongIssuer      = errors.New("jwt: wrong token issuer")
)

// Claims carry the account name as the registered subject.
type Claims struct {
	jwt.RegisteredClaims
}

// User returns the account name the token was issued for.
func (c *Claims) User() string { return c.Subject }

type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewGenerator fails when secret is empty so a misconfigured process stops
// at startup instead of rejecting every request.
func NewGenerator(secret, issuer string, ttl time.Duration) (*Generator, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

func (g *Generator) Generate(ctx context.Context, user auth.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   user.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Parse verifies a bearer token and returns its claims. It is a pure function
// of (token, secret, clock): no I/O, no mutation.
func (g *Generator) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrMalformedToken
		}
	}
	if !token.Valid {
		return nil, ErrInvalidSignature
	}
	if g.issuer != "" && claims.Issuer != g.issuer {
		return nil, ErrWrongIssuer
	}
	return claims, nil
}
