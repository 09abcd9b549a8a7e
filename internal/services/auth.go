package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cipherhunt/internal/common"
	"github.com/dmitrijs2005/cipherhunt/internal/cryptox"
	"github.com/dmitrijs2005/cipherhunt/internal/dbx"
	"github.com/dmitrijs2005/cipherhunt/internal/logging"
	"github.com/dmitrijs2005/cipherhunt/internal/models"
	"github.com/dmitrijs2005/cipherhunt/internal/progress"
)

// InstallSaltKey holds the per-installation salt used by argon2id digests.
const InstallSaltKey = "install_salt"

// AuthService is the credential store.
//
// Contract:
//   - Register: create a user and log them in.
//   - Login: verify credentials and log in.
//   - Logout: forget the active session; idempotent.
//   - Restore: resume the session persisted by a previous run, if any.
//
// The password digest always completes and verifies before a session is
// persisted.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) (*Session, error)
	Login(ctx context.Context, username string, password []byte) (*Session, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*Session, error)
}

type authService struct {
	db      *sql.DB
	tracker *progress.Tracker
	alg     cryptox.Algorithm
	logger  logging.Logger
}

// NewAuthService constructs an AuthService hashing new passwords with alg.
func NewAuthService(db *sql.DB, tracker *progress.Tracker, alg cryptox.Algorithm, logger logging.Logger) AuthService {
	return &authService{db: db, tracker: tracker, alg: alg, logger: logger.With("service", "auth")}
}

func (a *authService) newSession(u *models.User) *Session {
	return &Session{User: u, CurrentLevel: a.tracker.NextLevel(u)}
}

// installSalt returns the installation salt, creating it when create is set
// and none exists yet. A nil salt with a nil error means "not created".
func (a *authService) installSalt(ctx context.Context, create bool) ([]byte, error) {
	store := newRepos(a.db, a.logger).kv

	salt, err := store.Get(ctx, InstallSaltKey)
	if err != nil {
		return nil, err
	}
	if len(salt) > 0 || !create {
		return salt, nil
	}

	salt = common.GenerateRandByteArray(cryptox.SaltSize)
	if err := store.Set(ctx, InstallSaltKey, salt); err != nil {
		return nil, err
	}
	a.logger.Info(ctx, "installation salt created")
	return salt, nil
}

// Register creates username with an empty, normalized progress map and
// makes it the active session.
func (a *authService) Register(ctx context.Context, username string, password []byte) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.ErrEmptyUsername
	}

	// Cheap check first so a taken name does not pay for the digest.
	_, err := newRepos(a.db, a.logger).users.Find(ctx, username)
	if err == nil {
		return nil, common.ErrDuplicateUsername
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	var salt []byte
	if a.alg == cryptox.Argon2ID {
		if salt, err = a.installSalt(ctx, true); err != nil {
			return nil, fmt.Errorf("register: %w", err)
		}
	}
	hash, err := cryptox.HashPassword(ctx, a.alg, password, salt)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	u := models.User{Username: username, PasswordHash: hash}
	a.tracker.Normalize(&u)

	err = dbx.WithTx(ctx, a.db, func(ctx context.Context, tx dbx.DBTX) error {
		r := newRepos(tx, a.logger)
		if err := r.users.Create(ctx, u); err != nil {
			return err
		}
		return r.session.Set(ctx, username)
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	a.logger.Info(ctx, "user registered", "username", username, "algorithm", string(a.alg))
	return a.newSession(&u), nil
}

// Login verifies password against the stored digest and persists the
// session. Unknown users and wrong passwords are indistinguishable.
func (a *authService) Login(ctx context.Context, username string, password []byte) (*Session, error) {
	username = strings.TrimSpace(username)
	r := newRepos(a.db, a.logger)

	u, err := r.users.Find(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	var salt []byte
	if cryptox.NeedsSalt(u.PasswordHash) {
		if salt, err = a.installSalt(ctx, false); err != nil {
			return nil, fmt.Errorf("login: %w", err)
		}
	}

	ok, err := cryptox.VerifyPassword(ctx, u.PasswordHash, password, salt)
	if err != nil {
		if errors.Is(err, cryptox.ErrMissingSalt) {
			a.logger.Warn(ctx, "argon2id digest without installation salt", "username", username)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	if err := r.session.Set(ctx, username); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	a.tracker.Normalize(u)
	a.logger.Info(ctx, "user logged in", "username", username)
	return a.newSession(u), nil
}

// Logout clears the persisted session pointer.
func (a *authService) Logout(ctx context.Context) error {
	if err := newRepos(a.db, a.logger).session.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Restore returns the session saved by a previous run, or nil when there is
// none. A pointer to a user that no longer exists is cleared.
func (a *authService) Restore(ctx context.Context) (*Session, error) {
	r := newRepos(a.db, a.logger)

	name, err := r.session.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if name == "" {
		return nil, nil
	}

	u, err := r.users.Find(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.logger.Warn(ctx, "session points to unknown user, clearing", "username", name)
			return nil, r.session.Clear(ctx)
		}
		return nil, fmt.Errorf("restore session: %w", err)
	}

	a.tracker.Normalize(u)
	a.logger.Debug(ctx, "session restored", "username", name)
	return a.newSession(u), nil
}
