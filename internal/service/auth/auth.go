// Package auth handles accounts and sessions: credential verification,
// registration, token issue and validation.
// [DIP] Depends on the userstore port; local mode plugs in the env-configured
// admin, remote mode the users table.
package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domainuser "github.com/linhao/promptmaster/internal/domain/user"
	"github.com/linhao/promptmaster/internal/port/userstore"
)

var (
	ErrBadCredentials = errors.New("invalid username or password")
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrUsernameTaken  = errors.New("username already taken")
	ErrRegisterArgs   = errors.New("invalid registration data")
	ErrRegisterClosed = errors.New("registration is disabled")
	ErrBadInviteCode  = errors.New("invalid invite code")
	ErrNoRegistration = errors.New("registration is not available with local storage")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minPasswordLength = 6
	sessionTTL        = 24 * time.Hour
)

// RegistrationPolicy is read at register time so admin config changes apply
// without a restart.
type RegistrationPolicy struct {
	Enabled        bool
	InviteRequired bool
	InviteCode     string
}

// Session is the authenticated view of a user handed to the transport layer.
type Session struct {
	UserID   int64           `json:"id"`
	Username string          `json:"username"`
	Role     domainuser.Role `json:"role"`
	Avatar   string          `json:"avatar,omitempty"`
	Email    string          `json:"email,omitempty"`

	// AnnouncementSeen is cleared on login so the site announcement shows
	// again for the new session.
	AnnouncementSeen bool `json:"announcementSeen"`
}

type Service struct {
	users  userstore.Store
	secret []byte

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewService(users userstore.Store, jwtSecret string) *Service {
	return &Service{
		users:    users,
		secret:   []byte(jwtSecret),
		sessions: make(map[string]*Session),
	}
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, *Session, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return "", nil, ErrBadCredentials
		}
		return "", nil, fmt.Errorf("looking up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrBadCredentials
	}

	token, err := s.generateToken(u)
	if err != nil {
		return "", nil, fmt.Errorf("issuing session token: %w", err)
	}

	sess := &Session{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
		Avatar:   u.Avatar,
		Email:    u.Email,
	}
	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()

	return token, sess, nil
}

// Register creates a user account, subject to the current policy. The
// backing store decides whether registration is possible at all: the local
// admin store returns ErrNotSupported.
func (s *Service) Register(ctx context.Context, policy RegistrationPolicy, username, password, email, inviteCode string) (*Session, error) {
	if !policy.Enabled {
		return nil, ErrRegisterClosed
	}
	if policy.InviteRequired && inviteCode != policy.InviteCode {
		return nil, ErrBadInviteCode
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrRegisterArgs)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrRegisterArgs, minPasswordLength)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrRegisterArgs)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: malformed email address", ErrRegisterArgs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u, err := s.users.Create(ctx, domainuser.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domainuser.RoleUser,
		Email:        email,
	})
	if err != nil {
		switch {
		case errors.Is(err, userstore.ErrDuplicate):
			return nil, ErrUsernameTaken
		case errors.Is(err, userstore.ErrNotSupported):
			return nil, ErrNoRegistration
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &Session{UserID: u.ID, Username: u.Username, Role: u.Role, Email: u.Email}, nil
}

// Validate resolves a token to its session. Tokens survive the signature and
// expiry check but not a logout.
func (s *Service) Validate(token string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidToken
	}

	if _, err := s.parseToken(token); err != nil {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidToken
	}
	return sess, nil
}

// Logout destroys the session. Unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// MarkAnnouncementSeen records that the session dismissed the announcement.
func (s *Service) MarkAnnouncementSeen(token string) {
	s.mu.Lock()
	if sess, ok := s.sessions[token]; ok {
		sess.AnnouncementSeen = true
	}
	s.mu.Unlock()
}

// UserCount reports the number of registered accounts, for the admin panel.
func (s *Service) UserCount(ctx context.Context) (int, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}

func (s *Service) generateToken(u domainuser.User) (string, error) {
	// The jti keeps tokens from two logins of the same account distinct, so
	// logging out one session never invalidates the other.
	claims := jwt.MapClaims{
		"sub":  u.Username,
		"role": string(u.Role),
		"jti":  uuid.NewString(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
