package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"pokedex-api/backend/app/apperr"
	jwtutil "pokedex-api/backend/app/jwt"
	"pokedex-api/backend/app/models"
	"pokedex-api/backend/app/password"
)

type userStore interface {
	CountByUsername(ctx context.Context, username string) (int64, error)
	Create(ctx context.Context, u *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Save(ctx context.Context, u *models.User) error
}

type tokenSigner interface {
	Sign(id jwtutil.Identity) (string, error)
}

type UserService struct {
	users  userStore
	signer tokenSigner
	log    zerolog.Logger
}

func NewUserService(users userStore, signer tokenSigner, log zerolog.Logger) *UserService {
	return &UserService{users: users, signer: signer, log: log}
}

type LoginResult struct {
	Token    string `json:"token"`
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Register creates a user with the default role. The password is hashed here
// and nowhere else.
func (s *UserService) Register(ctx context.Context, username, plain string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return apperr.ErrMissingUsername
	}
	if err := password.Policy(plain); err != nil {
		return err
	}
	count, err := s.users.CountByUsername(ctx, username)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.ErrDuplicateUser
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "hash password", err)
	}
	if err := s.users.Create(ctx, &models.User{Username: username, PasswordHash: hash, Role: models.RoleUser}); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Msg("user registered")
	return nil
}

// Login checks credentials and issues a token. An unknown username and a wrong
// password both yield ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, plain string) (*LoginResult, error) {
	u, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, apperr.ErrUserNotFound) {
		// keep the response time close to the wrong-password path
		password.Verify(plain, dummyHash())
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !password.Verify(plain, u.PasswordHash) {
		return nil, apperr.ErrInvalidCredentials
	}
	token, err := s.signer.Sign(jwtutil.Identity{ID: u.ID, Username: u.Username, Role: u.Role})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "sign token", err)
	}
	return &LoginResult{Token: token, ID: u.ID, Username: u.Username, Role: u.Role}, nil
}

// EnsureAdmin creates the admin account if no user holds username yet.
func (s *UserService) EnsureAdmin(ctx context.Context, username, plain string) error {
	if username == "" || plain == "" {
		return apperr.Validation("admin username and password are required")
	}
	count, err := s.users.CountByUsername(ctx, username)
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Debug().Str("username", username).Msg("admin already present")
		return nil
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "hash password", err)
	}
	if err := s.users.Create(ctx, &models.User{Username: username, PasswordHash: hash, Role: models.RoleAdmin}); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Msg("admin user seeded")
	return nil
}

var (
	dummyOnce sync.Once
	dummy     string
)

func dummyHash() string {
	dummyOnce.Do(func() { dummy, _ = password.Hash("not-a-real-password") })
	return dummy
}
