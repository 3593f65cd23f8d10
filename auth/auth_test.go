package auth

import (
	"chat-sync/domain"
	"chat-sync/errors"
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "correct horse battery staple"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	// Wrong password never matches
	match, err = ComparePassword("wrong", hash)
	req.NoError(err)
	req.False(match)

	_, err = ComparePassword(password, "not-a-hash")
	req.Error(err)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager("test-secret", time.Hour)

	token, err := manager.Generate("principal-1")
	req.NoError(err)

	principal, err := manager.Validate(token)
	req.NoError(err)
	req.Equal("principal-1", principal)

	// A token signed with another secret is rejected
	_, err = NewTokenManager("other", time.Hour).Validate(token)
	req.Error(err)

	// An expired token is rejected
	expired, err := NewTokenManager("test-secret", -time.Minute).Generate("principal-1")
	req.NoError(err)
	_, err = manager.Validate(expired)
	req.Error(err)
}

func TestValidateSignUp(t *testing.T) {
	tests := []struct {
		name    string
		req     SignUpRequest
		wantErr bool
	}{
		{"Valid request", SignUpRequest{"Alice", "111", "alice@example.com", "secret"}, false},
		{"Missing name", SignUpRequest{"", "111", "alice@example.com", "secret"}, true},
		{"Missing phone", SignUpRequest{"Alice", "", "alice@example.com", "secret"}, true},
		{"Missing password", SignUpRequest{"Alice", "111", "alice@example.com", ""}, true},
		{"Phone with letters", SignUpRequest{"Alice", "11a", "alice@example.com", "secret"}, true},
		{"Invalid email", SignUpRequest{"Alice", "111", "alice", "secret"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := ValidateSignUp(tt.req)
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrValidation)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	req := require.New(t)

	req.NoError(ValidatePhone("5551234"))
	req.ErrorIs(ValidatePhone(""), errors.ErrValidation)
	req.ErrorIs(ValidatePhone("abc"), errors.ErrValidation)
	req.ErrorIs(ValidatePhone("-12"), errors.ErrValidation)
	req.ErrorIs(ValidateLogin(LoginRequest{Email: "a@b.c"}), errors.ErrValidation)
}

func TestValidateProfileFields(t *testing.T) {
	req := require.New(t)

	req.NoError(ValidateProfileFields(domain.ProfileFields{DisplayName: lo.ToPtr("Bob")}))
	req.ErrorIs(ValidateProfileFields(domain.ProfileFields{DisplayName: lo.ToPtr(" ")}), errors.ErrValidation)
	req.ErrorIs(ValidateProfileFields(domain.ProfileFields{PhoneNumber: lo.ToPtr("12x")}), errors.ErrValidation)
	req.ErrorIs(ValidateDecoded(domain.Chat{}), errors.ErrDecode)
}
