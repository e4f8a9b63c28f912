package chi

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// publicPaths are reachable without an API key.
var publicPaths = map[string]struct{}{
	PathHealth:  {},
	PathMetrics: {},
}

const bearerPrefix = "Bearer "

// BearerAuthMiddleware rejects requests without a configured API key.
// With no non-empty keys configured it passes every request through.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	keys := make([][]byte, 0, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			switch {
			case header == "":
				writeError(w, http.StatusUnauthorized, "Missing authorization header")
				return
			case !strings.HasPrefix(header, bearerPrefix):
				writeError(w, http.StatusUnauthorized, "Authorization header must use Bearer scheme")
				return
			case !knownKey(keys, []byte(header[len(bearerPrefix):])):
				writeError(w, http.StatusUnauthorized, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func knownKey(keys [][]byte, token []byte) bool {
	found := 0
	for _, k := range keys {
		found |= subtle.ConstantTimeCompare(k, token)
	}
	return found == 1
}
