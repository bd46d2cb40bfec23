package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"

	"github.com/pharmassist/pharmassist-api/config"
	"github.com/pharmassist/pharmassist-api/models"
)

var authenticator auth.Authenticator
var cache store.Cache

// SetupGoGuardian sets up the go-guardian middleware. Tokens are JWTs issued
// by the login handler; verified sessions are cached so repeat requests skip
// signature checks until the cache entry expires.
func SetupGoGuardian() {
	authenticator = auth.New()
	cache = store.NewFIFO(context.Background(), 10*time.Minute)
	tokenStrategy := bearer.New(verifyBearerToken, cache)

	authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
}

func verifyBearerToken(ctx context.Context, r *http.Request, token string) (auth.Info, error) {
	session, err := VerifyToken(token)
	if err != nil {
		return nil, err
	}
	return auth.NewDefaultUser(session.Email, session.UserID, []string{session.Role}, nil), nil
}

// VerifyToken parses and validates a signed access token and returns the
// session it carries. Exposed so the websocket endpoint can authenticate
// query-param tokens outside the normal middleware chain.
func VerifyToken(tokenString string) (models.Session, error) {
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return models.Session{}, errors.New("jwt secret is not set")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return models.Session{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.Session{}, errors.New("invalid token")
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return models.Session{}, errors.New("token missing required claims")
	}

	return models.Session{UserID: sub, Email: email, Role: role}, nil
}

// Middleware authenticates the bearer token and stores the resolved session
// in the request context for the handlers downstream
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user, err := authenticator.Authenticate(r)
		if err != nil {
			config.ErrorCode("unauthorized", http.StatusUnauthorized, models.CodeInvalidCredential, w, err)
			return
		}

		role := ""
		if groups := user.Groups(); len(groups) > 0 {
			role = groups[0]
		}
		session := models.Session{UserID: user.ID(), Email: user.UserName(), Role: role}
		zap.S().Debugf("user %s authenticated as %s\n", session.Email, session.Role)

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// RequireRole rejects authenticated requests whose session carries a
// different role. Must sit inside Middleware in the chain.
func RequireRole(role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok || session.Role != role {
			zap.S().Warnw("forbidden",
				"url", r.URL,
				"requiredRole", role,
				"role", session.Role,
			)
			config.ErrorCode("insufficient permissions", http.StatusForbidden, models.CodeForbidden, w, nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
