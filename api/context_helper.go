package api

import (
	"context"
	"time"

	"github.com/pharmassist/pharmassist-api/models"
)

// QueryTimeout is the default timeout for database queries
const QueryTimeout = 10 * time.Second

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession returns a context carrying the authenticated session
func WithSession(parent context.Context, session models.Session) context.Context {
	return context.WithValue(parent, sessionContextKey, session)
}

// SessionFromContext extracts the authenticated session placed by Middleware
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(models.Session)
	return session, ok
}
