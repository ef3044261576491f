package identity

import (
	"context"
	"errors"
	"net/http"
)

var ErrNoUser = errors.New("no user in request context")

type ctxKey struct{}

// Middleware lifts the caller's user ID off the X-User-ID header into the
// request context. OTP verification itself is mocked upstream, so the
// header is trusted as-is.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := r.Header.Get("X-User-ID"); userID != "" {
			r = r.WithContext(WithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// ContextProvider resolves the acting user from the request context.
type ContextProvider struct{}

func (ContextProvider) CurrentUserID(ctx context.Context) (string, error) {
	userID, _ := ctx.Value(ctxKey{}).(string)
	if userID == "" {
		return "", ErrNoUser
	}
	return userID, nil
}
