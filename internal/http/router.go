package http

import (
	"net/http"

	"go.uber.org/zap"

	"refapi/internal/httpx"
)

// RouterConfig collects the knobs the middleware chain needs.
type RouterConfig struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires the handlers and the middleware chain into the final
// server handler.
func NewRouter(logger *zap.Logger, page *PageHandler, refs *ReferenceHandler, bib *BibliographyHandler, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/references/preview", MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(refs.Preview),
	}))

	mux.Handle("/bibliography", MethodMux(map[string]http.Handler{
		http.MethodPost:   http.HandlerFunc(bib.Add),
		http.MethodGet:    http.HandlerFunc(bib.List),
		http.MethodDelete: http.HandlerFunc(bib.Clear),
	}))
	mux.Handle("/bibliography/export", MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(bib.Export),
	}))
	mux.Handle("/bibliography/", MethodMux(map[string]http.Handler{
		http.MethodDelete: http.HandlerFunc(bib.DeleteByID),
	}))

	mux.Handle("/", page)

	var handler http.Handler = mux
	handler = httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.CORSMiddleware(cfg.AllowedOrigins)(handler)
	if cfg.RateLimitRPS > 0 {
		handler = httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware(handler)
	}
	handler = httpx.RecoveryMiddleware(logger)(handler)
	handler = httpx.AccessLogMiddleware(logger)(handler)
	handler = httpx.RequestIDMiddleware(handler)
	return handler
}
