package server

import (
	"net/http"

	"campaign-hub/auth"
	"campaign-hub/domain"

	"github.com/google/uuid"
)

// campaignScoped parses the campaign id and the caller credential, then runs fn.
// Errors of fn are written with their mapped status; a nil result means 204.
func (s *Server) campaignScoped(w http.ResponseWriter, r *http.Request, status int,
	fn func(campaignID uuid.UUID, cred auth.Credential) (any, error)) {
	campaignID, err := pathUUID(r, "campaignID")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	result, err := fn(campaignID, auth.CredentialFromRequest(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.writeJSON(w, status, result)
}

func (s *Server) getCampaign(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, _ auth.Credential) (any, error) {
		return s.campaigns.GetCampaign(r.Context(), campaignID)
	})
}

func (s *Server) updateCampaign(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, cred auth.Credential) (any, error) {
		var body auth.CampaignUpdateRequest
		if err := decodeJSON(w, r, &body); err != nil {
			return nil, err
		}
		return s.campaigns.UpdateCampaign(r.Context(), campaignID, cred, body)
	})
}

func (s *Server) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusNoContent, func(campaignID uuid.UUID, cred auth.Credential) (any, error) {
		return nil, s.campaigns.DeleteCampaign(r.Context(), campaignID, cred)
	})
}

func (s *Server) listCharacters(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, _ auth.Credential) (any, error) {
		return s.campaigns.ListCharacters(r.Context(), campaignID)
	})
}

func (s *Server) createCharacter(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusCreated, func(campaignID uuid.UUID, cred auth.Credential) (any, error) {
		var body auth.CharacterRequest
		if err := decodeJSON(w, r, &body); err != nil {
			return nil, err
		}
		return s.campaigns.CreateCharacter(r.Context(), campaignID, cred, body)
	})
}

func (s *Server) getCharacter(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, _ auth.Credential) (any, error) {
		characterID, err := pathUUID(r, "characterID")
		if err != nil {
			return nil, err
		}
		return s.campaigns.GetCharacter(r.Context(), campaignID, characterID)
	})
}

func (s *Server) updateCharacter(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, cred auth.Credential) (any, error) {
		characterID, err := pathUUID(r, "characterID")
		if err != nil {
			return nil, err
		}
		var body auth.CharacterRequest
		if err = decodeJSON(w, r, &body); err != nil {
			return nil, err
		}
		return s.campaigns.UpdateCharacter(r.Context(), campaignID, characterID, cred, body)
	})
}

func (s *Server) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusNoContent, func(campaignID uuid.UUID, cred auth.Credential) (any, error) {
		characterID, err := pathUUID(r, "characterID")
		if err != nil {
			return nil, err
		}
		return nil, s.campaigns.DeleteCharacter(r.Context(), campaignID, characterID, cred)
	})
}

func (s *Server) setColorOverride(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, cred auth.Credential) (any, error) {
		characterID, err := pathUUID(r, "characterID")
		if err != nil {
			return nil, err
		}
		var body domain.ColorTheme
		if err = decodeJSON(w, r, &body); err != nil {
			return nil, err
		}
		return s.campaigns.SetColorOverride(r.Context(), campaignID, characterID, cred, &body)
	})
}

func (s *Server) clearColorOverride(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, cred auth.Credential) (any, error) {
		characterID, err := pathUUID(r, "characterID")
		if err != nil {
			return nil, err
		}
		return s.campaigns.SetColorOverride(r.Context(), campaignID, characterID, cred, nil)
	})
}

func (s *Server) resolvedColors(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, _ auth.Credential) (any, error) {
		characterID, err := pathUUID(r, "characterID")
		if err != nil {
			return nil, err
		}
		return s.themes.ResolveColors(r.Context(), campaignID, characterID)
	})
}

func (s *Server) getRoster(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, _ auth.Credential) (any, error) {
		return s.campaigns.GetRoster(r.Context(), campaignID)
	})
}

func (s *Server) updateRoster(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, cred auth.Credential) (any, error) {
		var body auth.RosterRequest
		if err := decodeJSON(w, r, &body); err != nil {
			return nil, err
		}
		return s.campaigns.UpdateRoster(r.Context(), campaignID, cred, body)
	})
}

func (s *Server) getTierLayout(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, _ auth.Credential) (any, error) {
		return s.campaigns.GetTierLayout(r.Context(), campaignID, domain.Tier(r.PathValue("tier")))
	})
}

func (s *Server) saveTierLayout(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, cred auth.Credential) (any, error) {
		var body auth.TierLayoutRequest
		if err := decodeJSON(w, r, &body); err != nil {
			return nil, err
		}
		body.Tier = domain.Tier(r.PathValue("tier"))
		return s.campaigns.SaveTierLayout(r.Context(), campaignID, cred, body)
	})
}

func (s *Server) listCardLayouts(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, _ auth.Credential) (any, error) {
		return s.campaigns.ListCardLayouts(r.Context(), campaignID)
	})
}

func (s *Server) saveCardLayout(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, cred auth.Credential) (any, error) {
		var body auth.CardLayoutRequest
		if err := decodeJSON(w, r, &body); err != nil {
			return nil, err
		}
		return s.campaigns.SaveCardLayout(r.Context(), campaignID, cred, body)
	})
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, _ auth.Credential) (any, error) {
		limit, err := queryInt(r, "limit")
		if err != nil {
			return nil, err
		}
		return s.campaigns.ListEvents(r.Context(), campaignID, limit)
	})
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusCreated, func(campaignID uuid.UUID, cred auth.Credential) (any, error) {
		var body auth.TimelineEventRequest
		if err := decodeJSON(w, r, &body); err != nil {
			return nil, err
		}
		return s.campaigns.CreateEvent(r.Context(), campaignID, cred, body)
	})
}

func (s *Server) getEvent(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, _ auth.Credential) (any, error) {
		eventID, err := pathUUID(r, "eventID")
		if err != nil {
			return nil, err
		}
		return s.campaigns.GetEvent(r.Context(), campaignID, eventID)
	})
}

func (s *Server) updateEvent(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusOK, func(campaignID uuid.UUID, cred auth.Credential) (any, error) {
		eventID, err := pathUUID(r, "eventID")
		if err != nil {
			return nil, err
		}
		var body auth.TimelineEventRequest
		if err = decodeJSON(w, r, &body); err != nil {
			return nil, err
		}
		return s.campaigns.UpdateEvent(r.Context(), campaignID, eventID, cred, body)
	})
}

func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	s.campaignScoped(w, r, http.StatusNoContent, func(campaignID uuid.UUID, cred auth.Credential) (any, error) {
		eventID, err := pathUUID(r, "eventID")
		if err != nil {
			return nil, err
		}
		return nil, s.campaigns.DeleteEvent(r.Context(), campaignID, eventID, cred)
	})
}
