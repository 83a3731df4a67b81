package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const (
	ctxActorID   ctxKey = "actor_id"
	ctxActorRole ctxKey = "actor_role"
)

type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Identity attaches the caller's identity from an optional bearer token.
// This service does not enforce authentication: requests without a token,
// or with an unparseable one, proceed anonymously. The identity only feeds
// audit fields (createdBy/reviewedBy fallbacks) and logs.
type Identity struct {
	secret []byte
	issuer string
}

func NewIdentity(secret, issuer string) *Identity {
	return &Identity{secret: []byte(secret), issuer: issuer}
}

func (a *Identity) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(a.secret) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		uid, role, err := a.parse(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), ctxActorID, uid)
		ctx = context.WithValue(ctx, ctxActorRole, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Identity) parse(r *http.Request) (string, string, error) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if !strings.HasPrefix(h, "Bearer ") {
		return "", "", errors.New("missing bearer token")
	}
	raw := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil {
		return "", "", err
	}
	if !tok.Valid {
		return "", "", errors.New("invalid token")
	}

	if a.issuer != "" && claims.Issuer != a.issuer {
		return "", "", errors.New("invalid issuer")
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return "", "", errors.New("missing uid")
	}
	role := strings.TrimSpace(claims.Role)
	if role == "" {
		role = "user"
	}
	return claims.UserID, role, nil
}

func ActorID(r *http.Request) string {
	if v, ok := r.Context().Value(ctxActorID).(string); ok {
		return v
	}
	return ""
}

func ActorRole(r *http.Request) string {
	if v, ok := r.Context().Value(ctxActorRole).(string); ok {
		return v
	}
	return ""
}
