package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidEnvelope = errors.New("invalid session envelope")

// Claims wraps the opaque backend token. The backend token itself is never parsed.
type Claims struct {
	Token string `json:"tok"`
	jwt.RegisteredClaims
}

// Codec signs backend tokens into cookie values and verifies them back.
// Envelopes carry no expiry: presence of a valid one means "signed in".
type Codec struct {
	secretKey []byte
}

func NewCodec(secretKey string) *Codec {
	return &Codec{secretKey: []byte(secretKey)}
}

// Seal wraps token in an HS256 signed envelope.
func (c *Codec) Seal(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidEnvelope)
	}
	claims := &Claims{
		Token: token,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Open verifies an envelope produced by Seal and returns the backend token.
func (c *Codec) Open(value string) (string, error) {
	token, err := jwt.ParseWithClaims(value, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Token == "" {
		return "", ErrInvalidEnvelope
	}
	return claims.Token, nil
}
