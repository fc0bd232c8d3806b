package http

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
)

type errorBody struct {
	Error           string   `json:"error"`
	Message         string   `json:"message"`
	AvailableRoutes []string `json:"availableRoutes,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, label, msg string) {
	writeJSON(w, status, errorBody{Error: label, Message: msg})
}

// recoverJSON turns handler panics into a JSON 500. With dev set the panic
// value is echoed to the client.
func recoverJSON(dev bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Printf("[Error] %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				msg := "An error occurred"
				if dev {
					msg = fmt.Sprint(rec)
				}
				writeError(w, http.StatusInternalServerError, "Internal Server Error", msg)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
