package middleware

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

type authCtxKey int

const claimsKey authCtxKey = 7

// Claims carries either a session grant (AssessmentID set) or an admin
// grant (Admin true). A session token only ever authorizes access to the
// one assessment it was issued for.
type Claims struct {
	AssessmentID string `json:"aid,omitempty"`
	Admin        bool   `json:"adm,omitempty"`
	jwt.RegisteredClaims
}

func secret() []byte {
	s := os.Getenv("ECR_JWT_SECRET")
	if s == "" {
		s = "ecr-dev-secret"
	}
	return []byte(s)
}

// SignSessionToken issues a bearer token scoped to one assessment.
func SignSessionToken(assessmentID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		AssessmentID:     assessmentID,
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(now), ExpiresAt: jwt.NewNumericDate(now.Add(ttl))},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// SignAdminToken issues a bearer token carrying the admin grant.
func SignAdminToken(ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Admin:            true,
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(now), ExpiresAt: jwt.NewNumericDate(now.Add(ttl))},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

func parseToken(tok string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tok, &Claims{}, func(token *jwt.Token) (interface{}, error) { return secret(), nil })
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// WithAuth attaches parsed claims to the context when an Authorization
// header with a valid bearer token is present. Invalid tokens are simply
// ignored; route guards decide what is required.
func WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			if c, err := parseToken(tok); err == nil {
				ctx := context.WithValue(r.Context(), claimsKey, c)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// SessionIDFromContext returns the assessment id granted by the request's
// session token.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if c, ok := ctx.Value(claimsKey).(*Claims); ok && c.AssessmentID != "" {
		return c.AssessmentID, true
	}
	return "", false
}

// IsAdmin reports whether the request carries a valid admin grant.
func IsAdmin(ctx context.Context) bool {
	c, ok := ctx.Value(claimsKey).(*Claims)
	return ok && c.Admin
}
