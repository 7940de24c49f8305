package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/moriyama-t/splitbot/internal/config"
	"github.com/rs/cors"
)

// SessionCounter reports how many conversations are mid-split.
type SessionCounter interface {
	PendingCount() int
}

type API struct {
	router   *mux.Router
	config   *config.Config
	splitter SessionCounter
	started  time.Time
}

func New(cfg *config.Config, splitter SessionCounter) *API {
	api := &API{
		router:   mux.NewRouter(),
		config:   cfg,
		splitter: splitter,
		started:  time.Now(),
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	a.router.HandleFunc("/", a.handleHome).Methods("GET")
	a.router.HandleFunc("/healthz", a.handleHealthz).Methods("GET")
	a.router.HandleFunc("/api/status", a.handleStatus).Methods("GET")
}

func (a *API) Start() error {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}

	handler := cors.New(corsOptions).Handler(a.router)

	log.Printf("API server listening on http://%s", a.config.WebBind)
	return http.ListenAndServe(a.config.WebBind, handler)
}
