package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campaign-hub/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MyPassw0rdIsStr0ng!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	// Wrong password
	match, err = ComparePassword("WrongPassword", hash)
	req.NoError(err)
	req.False(match)

	_, err = ComparePassword(password, "$bcrypt$whatever")
	req.Error(err)
}

func TestRegistrationValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"Valid request", RegisterRequest{"test@example.com", "ComplexPass123!"}, false},
		{"Invalid email", RegisterRequest{"notanemail", "ComplexPass123!"}, true},
		{"Password too short", RegisterRequest{"test@example.com", "Short1!"}, true},
		{"Missing digit", RegisterRequest{"test@example.com", "NoDigitPass!"}, true},
		{"Missing special char", RegisterRequest{"test@example.com", "NoSpecialChar123"}, true},
		{"Missing uppercase", RegisterRequest{"test@example.com", "nouppercase123!"}, true},
		{"Password too long", RegisterRequest{"test@example.com", strings.Repeat("a", 73)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateColorTheme(t *testing.T) {
	req := require.New(t)
	valid := domain.ColorTheme{
		BorderColors:          []string{"#000000"},
		TextColor:             "#FFFFFF",
		BadgeInteriorGradient: domain.Gradient{Type: "radial", Colors: []string{"#FFE4B5", "#DAA520"}},
		HPColor:               domain.BadgeColor{Border: "#FF0000", InteriorGradient: domain.Gradient{Type: "radial", Colors: []string{"#FF6B6B"}}},
		ACColor:               domain.BadgeColor{Border: "#808080", InteriorGradient: domain.Gradient{Type: "linear", Colors: []string{"#A9A9A9"}}},
	}
	req.NoError(ValidateColorTheme(valid))

	invalid := valid
	invalid.TextColor = "white"
	req.Error(ValidateColorTheme(invalid))

	invalid = valid
	invalid.BorderColors = []string{"#1", "#2", "#3", "#4", "#5"}
	req.Error(ValidateColorTheme(invalid))
}

func TestTokenIssuer(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("a-secret-long-enough-for-hs256", time.Hour)
	userID := uuid.NewString()

	token, err := issuer.GenerateToken(userID)
	req.NoError(err)

	claims, err := issuer.ValidateToken(token)
	req.NoError(err)
	req.Equal(userID, claims.UserID)

	// Signed with another secret
	other := NewTokenIssuer("another-secret", time.Hour)
	_, err = other.ValidateToken(token)
	req.Error(err)

	// Expired
	expired := NewTokenIssuer("a-secret-long-enough-for-hs256", -time.Minute)
	token, err = expired.GenerateToken(userID)
	req.NoError(err)
	_, err = issuer.ValidateToken(token)
	req.Error(err)
}

func TestCampaignValidator(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("a-secret-long-enough-for-hs256", time.Hour)
	validator := NewCampaignValidator(issuer)

	adminToken, err := GenerateAdminToken()
	req.NoError(err)
	req.Len(adminToken, 64)

	owner := uuid.New()
	campaign := domain.Campaign{ID: uuid.New(), OwnerID: owner, AdminToken: adminToken}

	// Admin token: exact match only
	req.True(validator.ValidateAdminToken(campaign, adminToken))
	req.False(validator.ValidateAdminToken(campaign, adminToken[:63]))
	req.False(validator.ValidateAdminToken(campaign, ""))

	// Owner session token
	ownerToken, err := issuer.GenerateToken(owner.String())
	req.NoError(err)
	req.True(validator.ValidateOwnerToken(campaign, ownerToken))

	strangerToken, err := issuer.GenerateToken(uuid.NewString())
	req.NoError(err)
	req.False(validator.ValidateOwnerToken(campaign, strangerToken))

	// A raw user id is not a credential
	req.False(validator.ValidateOwnerToken(campaign, owner.String()))
}

func TestCredentialFromRequest(t *testing.T) {
	req := require.New(t)

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	req.True(CredentialFromRequest(r).Empty())

	r.Header.Set(AdminTokenHeader, " abc ")
	r.Header.Set(AuthorizationHeader, "Bearer xyz")
	credential := CredentialFromRequest(r)
	req.Equal("abc", credential.AdminToken)
	req.Equal("xyz", credential.OwnerToken)

	r.Header.Set(AuthorizationHeader, "Basic xyz")
	req.Empty(CredentialFromRequest(r).OwnerToken)
}

func TestRequireUser(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("a-secret-long-enough-for-hs256", time.Hour)
	userID := uuid.NewString()
	var seen string
	handler := RequireUser(issuer, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserIDFromContext(r.Context())
	}))

	// Without token
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/campaigns", nil))
	req.Equal(http.StatusUnauthorized, rec.Code)

	// With a valid token
	token, err := issuer.GenerateToken(userID)
	req.NoError(err)
	r := httptest.NewRequest(http.MethodPost, "/campaigns", nil)
	r.Header.Set(AuthorizationHeader, "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	req.Equal(http.StatusOK, rec.Code)
	req.Equal(userID, seen)
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
