package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pshophq/pshop/internal/pshop/domain"
	"github.com/pshophq/pshop/internal/pshop/store"
	"github.com/pshophq/pshop/pkg/cryptox"
	"github.com/pshophq/pshop/pkg/idx"
	"github.com/pshophq/pshop/pkg/slogx"
)

var (
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrForbidden          = errors.New("invalid admin code")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUnauthenticated    = errors.New("invalid or expired session")
)

type AuthService struct {
	Store      store.Store
	AdminCode  string // shared secret gating register and reset-password
	SessionTTL time.Duration
}

// Register creates a new account and immediately opens a session for it.
// When session creation fails the user still exists; the caller gets the
// user back with a zero session and can log in normally afterwards.
func (s *AuthService) Register(ctx context.Context, username, name, password, adminCode string) (domain.User, domain.Session, error) {
	log := slogx.FromContext(ctx)

	username = strings.ToLower(strings.TrimSpace(username))
	name = strings.TrimSpace(name)

	if username == "" || password == "" || adminCode == "" {
		return domain.User{}, domain.Session{}, ErrValidation
	}
	if utf8.RuneCountInString(username) < 3 {
		return domain.User{}, domain.Session{}, ErrUsernameTooShort
	}
	if utf8.RuneCountInString(password) < 6 {
		return domain.User{}, domain.Session{}, ErrPasswordTooShort
	}
	if adminCode != s.AdminCode {
		log.Warn("registration attempted with wrong admin code",
			slog.String("username", username),
		)
		return domain.User{}, domain.Session{}, ErrForbidden
	}
	if name == "" {
		name = username
	}

	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, domain.Session{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Name:         name,
		PasswordHash: passHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration attempted with taken username",
				slog.String("username", username),
			)
			return domain.User{}, domain.Session{}, ErrUsernameTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, domain.Session{}, err
	}

	sess, err := s.createSession(ctx, user)
	user.PasswordHash = ""
	if err != nil {
		// The account exists either way; the client can still log in.
		log.Error("failed to create session after registration",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return user, domain.Session{}, nil
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return user, sess, nil
}

// Login verifies credentials and opens a fresh session. All prior sessions
// for the user are invalidated, so at most one session is live per login.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, domain.Session, error) {
	log := slogx.FromContext(ctx)

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return domain.User{}, domain.Session{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempted with unknown username",
				slog.String("username", username),
			)
			return domain.User{}, domain.Session{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, domain.Session{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("login attempted with wrong password",
			slog.String("user_id", user.ID),
		)
		return domain.User{}, domain.Session{}, ErrInvalidCredentials
	}

	if err := s.Store.Sessions().DeleteSessionsForUser(ctx, user.ID); err != nil {
		log.Error("failed to invalidate prior sessions",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return domain.User{}, domain.Session{}, err
	}

	sess, err := s.createSession(ctx, user)
	if err != nil {
		log.Error("failed to create session", slog.Any("error", err))
		return domain.User{}, domain.Session{}, err
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)
	user.PasswordHash = ""
	return user, sess, nil
}

// CheckSession resolves a token to a live session. Expired sessions are
// swept globally before the lookup so stale rows cannot accumulate between
// housekeeping runs. Bad tokens never produce an error, only ok=false.
func (s *AuthService) CheckSession(ctx context.Context, token string) (domain.Session, bool) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	if token == "" {
		return domain.Session{}, false
	}

	if err := s.Store.Sessions().DeleteExpiredSessions(ctx, now); err != nil {
		log.Warn("failed to sweep expired sessions", slog.Any("error", err))
	}

	sess, err := s.Store.Sessions().GetSession(ctx, token)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to fetch session", slog.Any("error", err))
		}
		return domain.Session{}, false
	}
	if !sess.Valid(now) {
		return domain.Session{}, false
	}
	return sess, true
}

// VerifySession adapts CheckSession to the httpx.SessionVerifier contract.
func (s *AuthService) VerifySession(ctx context.Context, token string) (string, string, error) {
	sess, ok := s.CheckSession(ctx, token)
	if !ok {
		return "", "", ErrUnauthenticated
	}
	return sess.UserID, sess.Username, nil
}

// ResetPassword rehashes the user's password behind the admin code gate and
// invalidates every open session for the account.
func (s *AuthService) ResetPassword(ctx context.Context, username, newPassword, adminCode string) error {
	log := slogx.FromContext(ctx)

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || newPassword == "" || adminCode == "" {
		return ErrValidation
	}
	if utf8.RuneCountInString(newPassword) < 6 {
		return ErrPasswordTooShort
	}
	if adminCode != s.AdminCode {
		log.Warn("password reset attempted with wrong admin code",
			slog.String("username", username),
		)
		return ErrForbidden
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	passHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, passHash); err != nil {
		log.Error("failed to update password hash",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return err
	}

	if err := s.Store.Sessions().DeleteSessionsForUser(ctx, user.ID); err != nil {
		log.Error("failed to invalidate sessions after password reset",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("password reset", slog.String("user_id", user.ID))
	return nil
}

// Logout deletes the session for the token. Unknown tokens are a no-op so
// repeated logouts stay idempotent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := s.Store.Sessions().DeleteSession(ctx, token)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

// HasAnyUser reports whether at least one account exists. Clients use this
// to decide between first-run setup and the normal login screen.
func (s *AuthService) HasAnyUser(ctx context.Context) (bool, error) {
	count, err := s.Store.Users().CountUsers(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *AuthService) createSession(ctx context.Context, user domain.User) (domain.Session, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Session{}, err
	}

	now := time.Now().UTC()
	sess := domain.Session{
		ID:        token,
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.SessionTTL),
	}
	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}
