package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kiliclub/clubdesk/internal/api/handler"
	apimiddleware "github.com/kiliclub/clubdesk/internal/api/middleware"
	"github.com/kiliclub/clubdesk/internal/bus"
	"github.com/kiliclub/clubdesk/internal/middleware"
	"github.com/kiliclub/clubdesk/internal/services/export"
	"github.com/kiliclub/clubdesk/internal/services/location"
	"github.com/kiliclub/clubdesk/internal/services/payment"
	"github.com/kiliclub/clubdesk/internal/services/player"
	"github.com/kiliclub/clubdesk/internal/services/role"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	PlayerService   *player.Service
	PaymentService  *payment.Service
	LocationService *location.Service
	RoleService     *role.Service
	ExportService   *export.Service
	Bus             *bus.Bus
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)
	paymentHandler := handler.NewPaymentHandler(cfg.PaymentService)
	locationHandler := handler.NewLocationHandler(cfg.LocationService)
	roleHandler := handler.NewRoleHandler(cfg.RoleService)
	exportHandler := handler.NewExportHandler(cfg.ExportService)
	eventsHandler := handler.NewEventsHandler(cfg.Bus)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes. Export/import/template go before the {id} routes so
	// mux does not treat "export" as a player id.
	api.HandleFunc("/players/export", exportHandler.ExportPlayers).Methods(http.MethodGet)
	api.HandleFunc("/players/import/template", exportHandler.Template).Methods(http.MethodGet)
	api.HandleFunc("/players/import", exportHandler.ImportPlayers).Methods(http.MethodPost)

	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.DeleteAll).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/status", playerHandler.SetActive).Methods(http.MethodPatch)

	// Payment routes
	api.HandleFunc("/payments", paymentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/payments", paymentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/payments", paymentHandler.DeleteAll).Methods(http.MethodDelete)
	api.HandleFunc("/payments/{id}", paymentHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", paymentHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/payments/{id}", paymentHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/payments/{id}/archive", paymentHandler.SetArchived).Methods(http.MethodPatch)

	// Location routes
	api.HandleFunc("/locations", locationHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/locations", locationHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/locations/{id}", locationHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/locations/{id}", locationHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/locations/{id}", locationHandler.Delete).Methods(http.MethodDelete)

	// Role routes
	api.HandleFunc("/roles", roleHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/roles", roleHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/roles/{id}", roleHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/roles/{id}", roleHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/roles/{id}", roleHandler.Delete).Methods(http.MethodDelete)

	// Change-notification stream
	api.HandleFunc("/events", eventsHandler.Stream).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
