// Package quizid mints and reads the opaque quiz identifiers returned with
// every generated quiz. An identifier is an HS256 token that carries the
// seed the quiz was built from.
package quizid

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuerName = "mindengage-quiz"

var ErrInvalidID = errors.New("invalid quiz id")

type Claims struct {
	Seed string `json:"seed"`
	jwt.RegisteredClaims
}

type Issuer struct {
	hmac []byte
	now  func() time.Time
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{hmac: []byte(secret), now: time.Now}
}

// Issue returns a fresh identifier bound to seed. Two calls with the same
// seed yield different identifiers.
func (i *Issuer) Issue(seed string) (string, error) {
	claims := &Claims{
		Seed: seed,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuerName,
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(i.now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.hmac)
}

// Parse verifies id and returns its claims.
func (i *Issuer) Parse(id string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(id, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.hmac, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	c, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidID
	}
	return c, nil
}
