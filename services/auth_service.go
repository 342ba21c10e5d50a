package services

import (
	"context"
	"fmt"
	"log/slog"

	"campaign-hub/auth"
	"campaign-hub/contract"
	"campaign-hub/domain"
	"campaign-hub/errors"

	"github.com/google/uuid"
)

type IAuthService interface {
	Register(ctx context.Context, email, password string) (Session, error)
	Login(ctx context.Context, email, password string) (Session, error)
	Authorize(ctx context.Context, campaignID uuid.UUID, credential auth.Credential) (domain.Campaign, error)
}

// Session is returned on signup and login.
type Session struct {
	Token     string            `json:"token"`
	User      domain.User       `json:"user"`
	Campaigns []domain.Campaign `json:"campaigns"`
}

type AuthService struct {
	log       *slog.Logger
	users     contract.IUserRepository
	campaigns contract.CampaignReader
	tokens    *auth.TokenIssuer
	validator contract.CredentialValidator
}

func NewAuthService(log *slog.Logger, users contract.IUserRepository, campaigns contract.CampaignReader,
	tokens *auth.TokenIssuer, validator contract.CredentialValidator) *AuthService {
	return &AuthService{
		log:       log,
		users:     users,
		campaigns: campaigns,
		tokens:    tokens,
		validator: validator,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (Session, error) {
	// 1. Validate business rules before any expensive cryptographic operation
	if err := auth.ValidateRegister(auth.RegisterRequest{Email: email, Password: password}); err != nil {
		return Session{}, fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	// 2. Hash in the service layer, the repository never sees plain passwords
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Persist, propagates ErrUserAlreadyExists if email is taken
	user, err := s.users.CreateUser(email, hashedPassword)
	if err != nil {
		return Session{}, err
	}

	token, err := s.tokens.GenerateToken(user.ID.String())
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}
	s.log.Info("User registered", "user_id", user.ID)
	return Session{Token: token, User: user, Campaigns: []domain.Campaign{}}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		// Generic error to prevent user enumeration
		return Session{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID.String())
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}

	campaigns, err := s.campaigns.ListCampaignsByOwner(user.ID)
	if err != nil {
		return Session{}, err
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return Session{Token: token, User: user, Campaigns: campaigns}, nil
}

// Authorize is the gate in front of every campaign write.
// Checks run in order: a credential is present, the campaign exists, then the
// credential is either the admin token or a session token of the owner.
func (s *AuthService) Authorize(ctx context.Context, campaignID uuid.UUID, credential auth.Credential) (domain.Campaign, error) {
	if credential.Empty() {
		return domain.Campaign{}, errors.ErrUnauthenticated
	}
	if err := ctx.Err(); err != nil {
		return domain.Campaign{}, err
	}

	campaign, err := s.campaigns.GetCampaign(campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}

	if credential.AdminToken != "" && s.validator.ValidateAdminToken(campaign, credential.AdminToken) {
		return campaign, nil
	}
	if credential.OwnerToken != "" && s.validator.ValidateOwnerToken(campaign, credential.OwnerToken) {
		return campaign, nil
	}

	s.log.Debug("Credential rejected", "campaign_id", campaignID)
	return domain.Campaign{}, errors.ErrUnauthorized
}
