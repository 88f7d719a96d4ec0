package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	domainuser "github.com/linhao/promptmaster/internal/domain/user"
	"github.com/linhao/promptmaster/internal/mocks"
	"github.com/linhao/promptmaster/internal/port/userstore"
	"github.com/linhao/promptmaster/internal/service/auth"
)

const testSecret = "test-secret"

func newAuth(t *testing.T) (*auth.Service, *mocks.MockUserStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)
	return auth.NewService(users, testSecret), users
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func openPolicy() auth.RegistrationPolicy {
	return auth.RegistrationPolicy{Enabled: true}
}

func TestLogin(t *testing.T) {
	svc, users := newAuth(t)
	users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(domainuser.User{
		ID:           3,
		Username:     "alice",
		PasswordHash: hash(t, "secret-pw"),
		Role:         domainuser.RoleUser,
		Email:        "alice@example.com",
	}, nil)

	token, sess, err := svc.Login(context.Background(), "alice", "secret-pw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3), sess.UserID)
	assert.Equal(t, domainuser.RoleUser, sess.Role)
	assert.False(t, sess.AnnouncementSeen)

	// The issued token resolves back to the same session.
	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users := newAuth(t)
	users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(domainuser.User{
		Username:     "alice",
		PasswordHash: hash(t, "right"),
	}, nil)

	_, _, err := svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, auth.ErrBadCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, users := newAuth(t)
	users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(domainuser.User{}, userstore.ErrNotFound)

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, auth.ErrBadCredentials)
}

func TestRegister(t *testing.T) {
	svc, users := newAuth(t)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domainuser.User) (domainuser.User, error) {
			assert.Equal(t, "bob", u.Username)
			assert.Equal(t, domainuser.RoleUser, u.Role)
			// The store receives a hash, never the plaintext.
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("longenough")))
			u.ID = 9
			return u, nil
		})

	sess, err := svc.Register(context.Background(), openPolicy(), "bob", "longenough", "bob@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, int64(9), sess.UserID)
}

func TestRegister_PolicyChecks(t *testing.T) {
	invite := auth.RegistrationPolicy{Enabled: true, InviteRequired: true, InviteCode: "OPEN-SESAME"}

	tests := []struct {
		name    string
		policy  auth.RegistrationPolicy
		invite  string
		wantErr error
	}{
		{"registration closed", auth.RegistrationPolicy{}, "", auth.ErrRegisterClosed},
		{"missing invite code", invite, "", auth.ErrBadInviteCode},
		{"wrong invite code", invite, "nope", auth.ErrBadInviteCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuth(t)
			_, err := svc.Register(context.Background(), tt.policy, "bob", "longenough", "", tt.invite)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegister_ArgumentChecks(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		email    string
	}{
		{"blank username", "   ", "longenough", "bob@example.com"},
		{"short password", "bob", "short", "bob@example.com"},
		{"missing email", "bob", "longenough", ""},
		{"malformed email", "bob", "longenough", "not-an-email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuth(t)
			_, err := svc.Register(context.Background(), openPolicy(), tt.username, tt.password, tt.email, "")
			assert.ErrorIs(t, err, auth.ErrRegisterArgs)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, users := newAuth(t)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domainuser.User{}, userstore.ErrDuplicate)

	_, err := svc.Register(context.Background(), openPolicy(), "bob", "longenough", "bob@example.com", "")
	assert.ErrorIs(t, err, auth.ErrUsernameTaken)
}

func TestRegister_LocalModeHasNoUserTable(t *testing.T) {
	svc, users := newAuth(t)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domainuser.User{}, userstore.ErrNotSupported)

	_, err := svc.Register(context.Background(), openPolicy(), "bob", "longenough", "bob@example.com", "")
	assert.ErrorIs(t, err, auth.ErrNoRegistration)
}

func TestValidate_UnknownToken(t *testing.T) {
	svc, _ := newAuth(t)
	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidate_ForeignSignature(t *testing.T) {
	svc, users := newAuth(t)
	users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(domainuser.User{
		Username:     "alice",
		PasswordHash: hash(t, "pw-alice"),
	}, nil)

	token, _, err := svc.Login(context.Background(), "alice", "pw-alice")
	require.NoError(t, err)

	// A token minted under a different secret never validates, even when the
	// registry somehow knows it.
	other := auth.NewService(nil, "other-secret")
	_, err = other.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	svc, users := newAuth(t)
	users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(domainuser.User{
		Username:     "alice",
		PasswordHash: hash(t, "pw"),
	}, nil)

	token, _, err := svc.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	svc.Logout(token)
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	// Logging out twice is harmless.
	svc.Logout(token)
}

func TestMarkAnnouncementSeen(t *testing.T) {
	svc, users := newAuth(t)
	users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(domainuser.User{
		Username:     "alice",
		PasswordHash: hash(t, "pw"),
	}, nil)

	token, sess, err := svc.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.False(t, sess.AnnouncementSeen)

	svc.MarkAnnouncementSeen(token)
	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.True(t, got.AnnouncementSeen)

	// Unknown tokens are ignored.
	svc.MarkAnnouncementSeen("bogus")
}

func TestUserCount(t *testing.T) {
	svc, users := newAuth(t)
	users.EXPECT().Count(gomock.Any()).Return(12, nil)

	n, err := svc.UserCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}
