package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"campaign-hub/domain"

	"github.com/google/uuid"
)

const adminTokenBytes = 32

// GenerateAdminToken returns 256 random bits, hex encoded.
func GenerateAdminToken() (string, error) {
	b := make([]byte, adminTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// CampaignValidator checks credentials presented for a campaign: the campaign
// admin token, or a session token of the campaign owner.
type CampaignValidator struct {
	tokens *TokenIssuer
}

func NewCampaignValidator(tokens *TokenIssuer) *CampaignValidator {
	return &CampaignValidator{tokens: tokens}
}

// ValidateAdminToken is an exact, constant-time match.
func (v *CampaignValidator) ValidateAdminToken(campaign domain.Campaign, token string) bool {
	if token == "" || campaign.AdminToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(campaign.AdminToken)) == 1
}

// ValidateOwnerToken accepts a valid session token whose user owns the campaign.
func (v *CampaignValidator) ValidateOwnerToken(campaign domain.Campaign, token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	claims, err := v.tokens.ValidateToken(token)
	if err != nil {
		return false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return false
	}
	return campaign.OwnerID != uuid.Nil && userID == campaign.OwnerID
}
