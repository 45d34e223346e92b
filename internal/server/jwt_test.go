package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelogic/hirelogic-api/internal/config"
)

func newSessionService(expirationHours int) *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "hirelogic-dashboard-signing-key-minimum-32-bytes",
		ExpirationHours: expirationHours,
	})
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	service := newSessionService(24)
	recruiter := uuid.New()

	token, err := service.GenerateToken(recruiter)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, recruiter, claims.UserID)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestJWTService_TokenShape(t *testing.T) {
	service := newSessionService(24)

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3, "a JWT has header, payload, and signature")
	for _, part := range parts {
		assert.NotEmpty(t, part)
	}
}

func TestJWTService_DistinctUsers(t *testing.T) {
	service := newSessionService(24)
	recruiter := uuid.New()
	candidate := uuid.New()

	recruiterToken, err := service.GenerateToken(recruiter)
	require.NoError(t, err)
	candidateToken, err := service.GenerateToken(candidate)
	require.NoError(t, err)

	assert.NotEqual(t, recruiterToken, candidateToken)

	claims, err := service.ValidateToken(recruiterToken)
	require.NoError(t, err)
	assert.Equal(t, recruiter, claims.UserID)

	claims, err = service.ValidateToken(candidateToken)
	require.NoError(t, err)
	assert.Equal(t, candidate, claims.UserID)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newSessionService(24)
	verifier := NewJWTService(&config.JWTConfig{
		Secret:          "rotated-dashboard-signing-key-minimum-32-bytes",
		ExpirationHours: 24,
	})

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "signature")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := newSessionService(24)
	recruiter := uuid.New()

	// Sign a token that expired an hour ago.
	now := time.Now()
	claims := &Claims{
		UserID: recruiter,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			NotBefore: jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(service.config.Secret))
	require.NoError(t, err)

	validated, err := service.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, validated)
	assert.Contains(t, err.Error(), "expired")
}

func TestJWTService_UnexpectedSigningMethod(t *testing.T) {
	service := newSessionService(24)

	claims := &Claims{UserID: uuid.New()}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	validated, err := service.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, validated)
}

func TestJWTService_MalformedTokens(t *testing.T) {
	service := newSessionService(24)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "one part", token: "notajwt"},
		{name: "two parts", token: "notajwt.either"},
		{name: "four parts", token: "too.many.parts.here"},
		{name: "invalid base64", token: "???.???.???"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_ExpirationHonorsConfig(t *testing.T) {
	for _, hours := range []int{1, 12, 24, 168} {
		service := newSessionService(hours)

		token, err := service.GenerateToken(uuid.New())
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		expected := time.Now().Add(time.Duration(hours) * time.Hour)
		assert.WithinDuration(t, expected, claims.ExpiresAt.Time, time.Minute)
	}
}
