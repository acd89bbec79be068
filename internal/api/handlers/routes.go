package handlers

import (
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/cortexa/relay/internal/api/middleware"
	"github.com/cortexa/relay/internal/services"
)

// NewRouter wires every endpoint onto a fresh router
func NewRouter(svcs *services.Services) *mux.Router {
	cfg := svcs.GetConfig()
	relayService := svcs.GetRelayService()

	router := mux.NewRouter()
	router.Use(middleware.RouteTemplate)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		var db Pinger
		if pg := svcs.GetPostgresService(); pg != nil {
			db = pg
		}
		HandleHealth(db, w, r)
	}).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := router.NewRoute().Subrouter()
	api.Use(middleware.RateLimit(cfg.GetRateLimitConfig("global"), "global", svcs.GetLimiter("global")))

	api.HandleFunc("/register-user", func(w http.ResponseWriter, r *http.Request) {
		HandleRegisterUser(relayService, w, r)
	}).Methods("POST")
	api.HandleFunc("/check-user", func(w http.ResponseWriter, r *http.Request) {
		HandleCheckUser(relayService, w, r)
	}).Methods("POST")
	api.Handle("/chat", middleware.RateLimit(cfg.GetRateLimitConfig("chat"), "chat", svcs.GetLimiter("chat"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleChat(relayService, w, r)
	}))).Methods("POST")
	api.HandleFunc("/get-messages", func(w http.ResponseWriter, r *http.Request) {
		HandleGetMessages(relayService, w, r)
	}).Methods("POST")

	return router
}

// NewHandler wraps the router with request ids, access logs, metrics, CORS
// and panic recovery. The outer layers also see requests no route matched.
func NewHandler(svcs *services.Services) http.Handler {
	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(svcs.GetConfig().CORSAllowedOrigins),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(recoveryLogger{}),
		gorillahandlers.PrintRecoveryStack(false),
	)
	router := NewRouter(svcs)
	observed := middleware.RequestID(middleware.RequestLogger(middleware.Metrics(router)))
	return recovery(cors(observed))
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	log.Error().Interface("panic", v).Msg("Recovered from handler panic")
}
