package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/api-sage/banking-api/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// BasicAuth guards the mutating routes with channel credentials. The
// channel key is bcrypt-hashed once at startup so the plaintext never
// lives beyond configuration load.
func BasicAuth(channelID string, channelKey string) (func(http.Handler) http.Handler, error) {
	keyHash, err := bcrypt.GenerateFromPassword([]byte(channelKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, key, ok := r.BasicAuth()
			if !ok || !secureEqual(id, channelID) || bcrypt.CompareHashAndPassword(keyHash, []byte(key)) != nil {
				logger.Info("basic auth middleware unauthorized request", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
