package server

import (
	"net/http"

	"campaign-hub/errors"
	"campaign-hub/sink"

	"github.com/google/uuid"
)

// subscribe upgrades first and reports every subscribe failure as a close
// code, so browser clients can tell a bad id from a missing campaign.
func (s *Server) subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader already answered with an HTTP error
		s.log.Debug("Websocket upgrade failed", "error", err)
		return
	}

	campaignID, err := uuid.Parse(r.PathValue("campaignID"))
	if err != nil {
		sink.Reject(conn, errors.CloseInvalidCampaign, "invalid campaign id", s.sinkOptions.WriteTimeout)
		return
	}

	ws := sink.NewWebSocketSink(s.log, conn, campaignID, s.sinkOptions)
	ws.OnClose(func() { s.subscriptions.Leave(campaignID, ws) })

	if err = s.subscriptions.Join(r.Context(), campaignID, ws); err != nil {
		code := errors.CloseCode(err)
		s.log.Debug("Subscription refused", "campaign_id", campaignID, "code", code, "error", err)
		ws.Close(code, closeReason(code))
		return
	}

	if err = ws.Run(r.Context()); err != nil {
		s.log.Debug("Connection ended", "campaign_id", campaignID, "subscriber_id", ws.ID(), "error", err)
	}
}

func closeReason(code int) string {
	switch code {
	case errors.CloseInvalidCampaign:
		return "invalid campaign id"
	case errors.CloseCampaignNotFound:
		return "campaign not found"
	case errors.CloseDeliveryFailed:
		return "delivery failed"
	default:
		return "internal error"
	}
}
