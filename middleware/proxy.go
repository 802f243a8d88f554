package middleware

import "net/http"

// TrustProxyMiddleware restores scheme and host when the portal runs
// behind the institutional reverse proxy.
func TrustProxyMiddleware(next HandlerFunc) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			r.URL.Scheme = proto
		}

		if host := r.Header.Get("X-Forwarded-Host"); host != "" {
			r.Host = host
		}

		return next(w, r)
	}
}
