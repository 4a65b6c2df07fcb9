package middleware

import (
	"crypto/subtle"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// AuthMiddlewareHandler guards the analysis endpoints with a shared app
// secret. There are no user accounts here, the mobile app just proves
// it is the mobile app.
type AuthMiddlewareHandler struct {
	appSecret    string
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(appSecret string) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		appSecret: appSecret,
		allowedPaths: map[string]bool{
			"/health":            true,
			"/version":           true,
			"/posture/exercises": true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || h.allowedPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			// empty secret means auth is disabled (dev setups)
			if h.appSecret == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get("X-FORMCHECK-TOKEN")
			if subtle.ConstantTimeCompare([]byte(token), []byte(h.appSecret)) != 1 {
				log.Tracef("auth check failed for path [%s]", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
