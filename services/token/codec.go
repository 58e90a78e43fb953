// Package token implements the capability token bridging availability
// search and booking. A token is a signed, self-contained credential for
// one priced availability offer; the client carries it opaquely and the
// booking orchestrator redeems it. There is no server-side session.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrNoSecret means the signing secret is unset. This is a configuration
// error, checked before any supplier network call is made.
var ErrNoSecret = errors.New("capability token signing secret is not configured")

// ErrInvalidToken means signature or expiry verification failed. Callers
// must surface it as a rejected booking attempt, never as "no availability".
var ErrInvalidToken = errors.New("invalid or tampered capability token")

// UnitItem is one traveler's unit reference inside a token.
type UnitItem struct {
	UnitID string `json:"unitId"`
}

// BookingIntent is the payload captured at availability time. Signing
// prevents the client from mutating price-determining fields between
// search and booking.
type BookingIntent struct {
	ProductID         string     `json:"productId"`
	OptionID          string     `json:"optionId"`
	AvailabilityID    string     `json:"availabilityId"`
	Currency          string     `json:"currency,omitempty"`
	UnitItems         []UnitItem `json:"unitItems"`
	SettlementMethods []string   `json:"settlementMethods,omitempty"`
}

type intentClaims struct {
	BookingIntent
	jwt.RegisteredClaims
}

// Codec signs and verifies capability tokens. The secret is immutable
// after construction, so concurrent Mint/Redeem calls need no locking.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a codec with the given secret and token lifetime. A zero
// ttl mints tokens without an expiry claim.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Ready reports whether the codec can mint tokens. Orchestrators call this
// before issuing supplier requests so a missing secret fails fast.
func (c *Codec) Ready() error {
	if len(c.secret) == 0 {
		return ErrNoSecret
	}
	return nil
}

// Mint signs a booking intent into an opaque token string.
func (c *Codec) Mint(intent BookingIntent) (string, error) {
	if err := c.Ready(); err != nil {
		return "", err
	}
	claims := intentClaims{
		BookingIntent: intent,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if c.ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(c.ttl))
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign capability token: %w", err)
	}
	return signed, nil
}

// Redeem verifies a token and returns the embedded booking intent.
func (c *Codec) Redeem(tokenString string) (BookingIntent, error) {
	if err := c.Ready(); err != nil {
		return BookingIntent{}, err
	}
	var claims intentClaims
	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return BookingIntent{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid {
		return BookingIntent{}, ErrInvalidToken
	}
	return claims.BookingIntent, nil
}
