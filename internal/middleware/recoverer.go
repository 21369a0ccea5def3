package middleware

import (
	"net/http"
	"runtime/debug"

	"gwhub/internal/logs"
	"gwhub/internal/models"
)

// Recoverer catches a panic in a handler, logs it with the stack
// and answers with the uniform 500 body. No internal detail leaks out.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				reqid := GetRequestID(r)
				logs.Logger.Errorf("panic: %v reqid=%s uri=%s method=%s\nstack:\n%s",
					rec, reqid, r.RequestURI, r.Method, string(debug.Stack()))
				models.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
