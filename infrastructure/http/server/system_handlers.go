package server

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status string `json:"status"`
}

type versionResponse struct {
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

func (s *Server) versionInfo(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, versionResponse{
		Version: s.version,
		Uptime:  time.Since(s.startedAt).Round(time.Second).String(),
	})
}

func (s *Server) debugStats(w http.ResponseWriter, _ *http.Request) {
	if s.stats == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, s.stats.GetLatest())
}

func (s *Server) listPresets(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.themes.Presets())
}
