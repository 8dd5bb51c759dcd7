package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_SealOpen(t *testing.T) {
	codec := NewCodec("secret")

	value, err := codec.Seal("backend-token")
	require.NoError(t, err)
	assert.NotEmpty(t, value)
	assert.NotEqual(t, "backend-token", value)

	token, err := codec.Open(value)
	require.NoError(t, err)
	assert.Equal(t, "backend-token", token)
}

func TestCodec_SealEmptyToken(t *testing.T) {
	_, err := NewCodec("secret").Seal("")
	assert.ErrorIs(t, err, ErrInvalidEnvelope)
}

func TestCodec_OpenGarbage(t *testing.T) {
	_, err := NewCodec("secret").Open("invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidEnvelope)
}

func TestCodec_OpenWrongSecret(t *testing.T) {
	value, _ := NewCodec("secret1").Seal("backend-token")

	_, err := NewCodec("secret2").Open(value)
	assert.ErrorIs(t, err, ErrInvalidEnvelope)
}

func TestCodec_OpenInvalidSigningMethod(t *testing.T) {
	claims := &Claims{
		Token: "backend-token",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	value, _ := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))

	// HS384 is still HMAC, so the envelope opens; the method check only rejects non-HMAC algorithms.
	token, err := NewCodec("secret").Open(value)
	require.NoError(t, err)
	assert.Equal(t, "backend-token", token)

	unsigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = NewCodec("secret").Open(unsigned)
	assert.ErrorIs(t, err, ErrInvalidEnvelope)
}

func TestCodec_OpenEnvelopeWithoutToken(t *testing.T) {
	value, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{}).SignedString([]byte("secret"))

	_, err := NewCodec("secret").Open(value)
	assert.ErrorIs(t, err, ErrInvalidEnvelope)
}
