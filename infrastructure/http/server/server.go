package server

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"campaign-hub/auth"
	"campaign-hub/observability"
	"campaign-hub/services"
	"campaign-hub/sink"

	"github.com/gorilla/websocket"
)

type StatsProvider interface {
	GetLatest() observability.MonitoringStats
}

type Dependencies struct {
	Auth          *services.AuthService
	Campaigns     *services.CampaignService
	Subscriptions *services.SubscriptionService
	Themes        *services.ThemeService
	Tokens        *auth.TokenIssuer
	Stats         StatsProvider
	SinkOptions   sink.Options
	// AllowedOrigins lists the accepted websocket origins, "*" accepts any.
	AllowedOrigins []string
	Version        string
}

// Server exposes the campaign services over HTTP and the live stream over websocket.
type Server struct {
	log           *slog.Logger
	auth          *services.AuthService
	campaigns     *services.CampaignService
	subscriptions *services.SubscriptionService
	themes        *services.ThemeService
	tokens        *auth.TokenIssuer
	stats         StatsProvider
	sinkOptions   sink.Options
	upgrader      websocket.Upgrader
	version       string
	startedAt     time.Time
}

func NewServer(log *slog.Logger, deps Dependencies) *Server {
	s := &Server{
		log:           log,
		auth:          deps.Auth,
		campaigns:     deps.Campaigns,
		subscriptions: deps.Subscriptions,
		themes:        deps.Themes,
		tokens:        deps.Tokens,
		stats:         deps.Stats,
		sinkOptions:   deps.SinkOptions,
		version:       deps.Version,
		startedAt:     time.Now().UTC(),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(deps.AllowedOrigins),
	}
	return s
}

// Handler returns the routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.healthz)
	mux.HandleFunc("GET /version", s.versionInfo)
	mux.HandleFunc("GET /debug/stats", s.debugStats)
	mux.HandleFunc("GET /presets", s.listPresets)

	mux.HandleFunc("POST /auth/signup", s.signup)
	mux.HandleFunc("POST /auth/login", s.login)

	mux.Handle("POST /campaigns", auth.RequireUser(s.tokens, http.HandlerFunc(s.createCampaign)))
	mux.Handle("GET /campaigns", auth.RequireUser(s.tokens, http.HandlerFunc(s.listMyCampaigns)))
	mux.HandleFunc("GET /campaigns/{campaignID}", s.getCampaign)
	mux.HandleFunc("PATCH /campaigns/{campaignID}", s.updateCampaign)
	mux.HandleFunc("DELETE /campaigns/{campaignID}", s.deleteCampaign)
	mux.HandleFunc("GET /campaigns/{campaignID}/ws", s.subscribe)

	mux.HandleFunc("GET /campaigns/{campaignID}/characters", s.listCharacters)
	mux.HandleFunc("POST /campaigns/{campaignID}/characters", s.createCharacter)
	mux.HandleFunc("GET /campaigns/{campaignID}/characters/{characterID}", s.getCharacter)
	mux.HandleFunc("PUT /campaigns/{campaignID}/characters/{characterID}", s.updateCharacter)
	mux.HandleFunc("DELETE /campaigns/{campaignID}/characters/{characterID}", s.deleteCharacter)
	mux.HandleFunc("PUT /campaigns/{campaignID}/characters/{characterID}/colors", s.setColorOverride)
	mux.HandleFunc("DELETE /campaigns/{campaignID}/characters/{characterID}/colors", s.clearColorOverride)
	mux.HandleFunc("GET /campaigns/{campaignID}/characters/{characterID}/resolved-colors", s.resolvedColors)

	mux.HandleFunc("GET /campaigns/{campaignID}/roster", s.getRoster)
	mux.HandleFunc("PUT /campaigns/{campaignID}/roster", s.updateRoster)

	mux.HandleFunc("GET /campaigns/{campaignID}/layouts/tiers/{tier}", s.getTierLayout)
	mux.HandleFunc("PUT /campaigns/{campaignID}/layouts/tiers/{tier}", s.saveTierLayout)
	mux.HandleFunc("GET /campaigns/{campaignID}/layouts/cards", s.listCardLayouts)
	mux.HandleFunc("POST /campaigns/{campaignID}/layouts/cards", s.saveCardLayout)

	mux.HandleFunc("GET /campaigns/{campaignID}/events", s.listEvents)
	mux.HandleFunc("POST /campaigns/{campaignID}/events", s.createEvent)
	mux.HandleFunc("GET /campaigns/{campaignID}/events/{eventID}", s.getEvent)
	mux.HandleFunc("PUT /campaigns/{campaignID}/events/{eventID}", s.updateEvent)
	mux.HandleFunc("DELETE /campaigns/{campaignID}/events/{eventID}", s.deleteEvent)

	return mux
}

// checkOrigin accepts requests without an Origin header, which browsers always send.
func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 || slices.Contains(allowed, "*") {
			return true
		}
		return slices.Contains(allowed, origin)
	}
}
