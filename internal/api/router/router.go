package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aramlabs/aram-assistant/internal/chat"
	httpmiddleware "github.com/aramlabs/aram-assistant/internal/http/middleware"
	"github.com/aramlabs/aram-assistant/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	ChatHandler        *chat.Handler
	MetricsHandler     http.Handler
	AdminAuthSecret    string
	CORSAllowedOrigins []string

	AppName    string
	AppVersion string
	Languages  []string
}

// New creates the Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(httpmiddleware.SecurityHeaders)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthHandler(cfg))
	r.Post("/chat", cfg.ChatHandler.Chat)
	r.Handle("/chat/ws", cfg.ChatHandler.ChatSocket())

	// Review endpoints stay behind admin auth.
	r.Group(func(admin chi.Router) {
		admin.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
		admin.Get("/logs/summary", cfg.ChatHandler.Summary)
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}

func healthHandler(cfg *Config) http.HandlerFunc {
	type healthResponse struct {
		Status    string   `json:"status"`
		App       string   `json:"app"`
		Version   string   `json:"version"`
		Languages []string `json:"languages"`
	}
	resp := healthResponse{
		Status:    "running",
		App:       cfg.AppName,
		Version:   cfg.AppVersion,
		Languages: cfg.Languages,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
