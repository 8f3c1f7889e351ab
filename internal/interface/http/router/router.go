package router

import (
	"net/http"
	"strings"

	"github.com/ecohero/storefront-backend/internal/interface/http/handler"
)

// New builds an HTTP router without framework lock-in.
func New(subscriberHandler *handler.SubscriberHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/api/v1/newsletter", subscriberHandler.ListOrSubscribe)
	mux.HandleFunc("/api/v1/newsletter/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/v1/newsletter/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		subscriberHandler.Unsubscribe(w, r)
	})

	return mux
}
