package controller

import (
	"context"
	"crypto/rsa"
	"errors"
	"fanvote/pkg/logger"
	"fanvote/pkg/serrors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// SubjectKey is the context key under which the authenticated token subject is stored.
	SubjectKey CtxKey = "Subject"

	tokenIssuer = "fanvote"
)

// IssueToken signs an RS256 admin token for subject valid for ttl from now.
func IssueToken(privateKeyPEM, subject string, ttl time.Duration, now time.Time) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("token subject must not be blank")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    tokenIssuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// BearerAuth verifies RS256 signed JWTs carried in the Authorization header.
type BearerAuth struct {
	key *rsa.PublicKey
	now func() time.Time
}

// NewBearerAuth parses the PEM encoded RSA public key tokens are verified with.
func NewBearerAuth(publicKeyPEM string) (*BearerAuth, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &BearerAuth{key: key, now: time.Now}, nil
}

// Authenticate validates token and returns its subject. Every failure is
// reported as serrors.ErrUnauthorized.
func (a *BearerAuth) Authenticate(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if !parsed.Valid {
		return "", serrors.With(serrors.ErrUnauthorized, "invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	return claims.Subject, nil
}

// Middleware returns a middleware that answers 401 unless the request
// carries a valid bearer token. The token subject is stored under
// SubjectKey.
func (a *BearerAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, "missing bearer token", http.StatusUnauthorized)

			return
		}

		subject, err := a.Authenticate(token)
		if err != nil {
			logger.Debug(r.Context(), "rejected bearer token", zap.Error(err))
			w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
			http.Error(w, "invalid bearer token", http.StatusUnauthorized)

			return
		}

		ctx := context.WithValue(r.Context(), SubjectKey, subject)
		ctx = logger.WithFields(ctx, zap.String(string(SubjectKey), subject))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)

	return token, token != ""
}
