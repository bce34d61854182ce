package auth

import (
	"testing"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("secret", 12*time.Hour)

	token, err := svc.Issue("admin@devfair.io")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin@devfair.io", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestTokenService_ValidateMalformedToken(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Validate(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestTokenService_ValidateExpiredToken(t *testing.T) {
	svc := NewTokenService("secret", -time.Second)

	token, err := svc.Issue("admin@devfair.io")
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ValidateWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Minute).Issue("admin@devfair.io")
	assert.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Minute).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ValidateNoneSigningMethod(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)

	claims := gjwt.MapClaims{
		"sub":  "admin@devfair.io",
		"role": RoleAdmin,
		"exp":  time.Now().Add(time.Minute).Unix(),
		"iat":  time.Now().Unix(),
	}
	unsigned := gjwt.NewWithClaims(gjwt.SigningMethodNone, claims)
	tokenStr, err := unsigned.SignedString(gjwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.Validate(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", ""},
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase scheme", "bearer abc", "abc"},
		{"wrong scheme", "Basic abc", ""},
		{"scheme only", "Bearer", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BearerToken(tc.header))
		})
	}
}
