package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pharmassist/pharmassist-api/config"
	"github.com/pharmassist/pharmassist-api/models"
)

// TimeoutMiddleware adds request timeout to prevent long-running requests
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			// buffered so the handler goroutine can finish and exit even
			// after the deadline path has stopped listening
			done := make(chan bool, 1)
			go func() {
				next.ServeHTTP(w, r)
				done <- true
			}()

			select {
			case <-done:
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					zap.S().Warnw("request timeout",
						"path", r.URL.Path,
						"method", r.Method,
						"timeout", timeout)
					config.ErrorCode("request timeout", http.StatusRequestTimeout, models.CodeUpstreamFailed, w, ctx.Err())
				}
			}
		})
	}
}
