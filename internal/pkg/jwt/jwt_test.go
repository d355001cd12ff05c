package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"fitnflex/internal/pkg/apperr"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "plain email", email: "member@fitnflex.io", want: "member@fitnflex.io"},
		{name: "normalised email", email: "  Coach@FitNFlex.io ", want: "coach@fitnflex.io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New("test-secret-123", DefaultTTL)

			before := time.Now().Truncate(time.Second)
			token, err := svc.GenerateToken(tt.email)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := svc.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, claims.Email)

			ttl := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
			assert.Equal(t, time.Hour, ttl)
			assert.False(t, claims.IssuedAt.Time.Before(before))
		})
	}
}

func TestService_ValidateToken_Expired(t *testing.T) {
	svc := New("test-secret-123", DefaultTTL)
	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken("member@fitnflex.io")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidToken))
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))
}

func TestService_ValidateToken_JustBeforeExpiry(t *testing.T) {
	svc := New("test-secret-123", DefaultTTL)
	issued := time.Now().Add(-59 * time.Minute)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken("member@fitnflex.io")
	require.NoError(t, err)

	svc.now = time.Now
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "member@fitnflex.io", claims.Email)
}

func TestService_ValidateToken_Tampered(t *testing.T) {
	svc := New("test-secret-123", DefaultTTL)
	token, err := svc.GenerateToken("member@fitnflex.io")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	token, err := New("secret-a", DefaultTTL).GenerateToken("member@fitnflex.io")
	require.NoError(t, err)

	_, err = New("secret-b", DefaultTTL).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		Email: "admin@fitnflex.io",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = New("test-secret-123", DefaultTTL).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ValidateToken_Malformed(t *testing.T) {
	svc := New("test-secret-123", DefaultTTL)

	for _, tok := range []string{"", "   ", "not-a-jwt", "a.b.c"} {
		_, err := svc.ValidateToken(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestService_ValidateToken_MissingExpiry(t *testing.T) {
	claims := Claims{Email: "member@fitnflex.io"}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret-123"))
	require.NoError(t, err)

	_, err = New("test-secret-123", DefaultTTL).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
