package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pkgauth "github.com/adiwijaya/warungpos-backend/pkg/auth"
	"github.com/adiwijaya/warungpos-backend/pkg/config"
	"github.com/adiwijaya/warungpos-backend/pkg/db/models"
	pkgerrors "github.com/adiwijaya/warungpos-backend/pkg/errors"
	"gorm.io/gorm"
)

// Session is a successful login: the resolved user plus the signed token
// the terminal carries for the rest of the shift.
type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Service handles terminal sign-in. Login is a username lookup against the
// fixed user directory; there are no passwords.
type Service interface {
	Login(ctx context.Context, username string) (*Session, error)
}

type service struct {
	repo *Repository
	jwt  config.JWTConfig
	now  func() time.Time
}

// NewService builds the auth service.
func NewService(repo *Repository, jwt config.JWTConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{repo: repo, jwt: jwt, now: time.Now}, nil
}

// Login resolves the username and mints a session token. Unknown usernames
// fail with NOT_FOUND.
func (s *service) Login(ctx context.Context, username string) (*Session, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown username")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up user")
	}

	token, err := pkgauth.MintSessionToken(s.jwt, s.now(), pkgauth.SessionTokenPayload{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint session token")
	}

	return &Session{User: user, Token: token}, nil
}
