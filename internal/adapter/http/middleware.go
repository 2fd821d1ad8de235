package httpadapter

import "net/http"

// corsMiddleware stamps the dashboard's permissive cross-origin contract on
// every response and answers pre-flight requests with 200 and no body before
// any method dispatch happens. The header set is fixed; off-the-shelf CORS
// middlewares refuse to combine a wildcard origin with allowed credentials,
// so the exact surface is written out here.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Credentials", "true")
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", "GET,OPTIONS,PATCH,DELETE,POST,PUT")
		header.Set("Access-Control-Allow-Headers", "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
