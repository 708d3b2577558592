package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "promptkeep"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims, signKey string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	require.NoError(t, err)

	return tokenString
}

func TestContextResolver_CurrentUser(t *testing.T) {
	resolver := NewContextResolver()

	tests := []struct {
		name        string
		ctx         context.Context
		wantOwnerID string
		wantErr     error
	}{
		{
			name:        "owner id present",
			ctx:         WithOwnerID(context.Background(), "user_2abc"),
			wantOwnerID: "user_2abc",
		},
		{
			name:    "empty context",
			ctx:     context.Background(),
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "empty owner id",
			ctx:     WithOwnerID(context.Background(), ""),
			wantErr: ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ownerID, err := resolver.CurrentUser(tt.ctx)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOwnerID, ownerID)
		})
	}
}

func TestParseSessionToken_Success(t *testing.T) {
	tokenString := signedToken(t, jwt.RegisteredClaims{
		Subject:   "user_2abc",
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, testSignKey)

	subject, err := ParseSessionToken(tokenString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "user_2abc", subject)
}

func TestParseSessionToken_Errors(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name: "expired token",
			token: signedToken(t, jwt.RegisteredClaims{
				Subject:   "user_2abc",
				Issuer:    testIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			}, testSignKey),
			wantErr: ErrTokenIsExpired,
		},
		{
			name: "wrong issuer",
			token: signedToken(t, jwt.RegisteredClaims{
				Subject:   "user_2abc",
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}, testSignKey),
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong sign key",
			token: signedToken(t, jwt.RegisteredClaims{
				Subject:   "user_2abc",
				Issuer:    testIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}, "other-key"),
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty subject",
			token: signedToken(t, jwt.RegisteredClaims{
				Issuer:    testIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}, testSignKey),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "garbage token",
			token:   "not-a-token",
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessionToken(tt.token, testSignKey, testIssuer)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "scheme with empty token", header: "Bearer ", wantErr: true},
		{name: "too many parts", header: "Bearer abc def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
