package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ParseSessionToken validates the given session token string and extracts the
// opaque user identifier from its "sub" claim.
//
// Validation includes:
//   - signature verification with HMAC-SHA256 and the provided sign key
//   - issuer (iss) claim check against the provided issuer
//   - expiration (exp) claim check
//   - subject (sub) claim presence
//
// The subject is returned verbatim: identifiers are opaque strings issued by
// the external provider and are never interpreted locally.
func ParseSessionToken(tokenString, signKey, issuer string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenIsExpired
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("%w: error getting subject from token: %w", ErrInvalidToken, err)
	}
	if subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	return subject, nil
}

// ParseBearerToken extracts the token string from a raw "Authorization" HTTP
// header value of the standard "<scheme> <token>" form.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
