package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/mywallet-api/internal/domain/entity"
	repo "github.com/oksasatya/mywallet-api/internal/domain/repository"
	"github.com/oksasatya/mywallet-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// Service implements the wallet use cases on top of the three stores.
type Service struct {
	Users     repo.UserRepository
	Sessions  repo.SessionRepository
	Movements repo.MovementRepository
	Logger    *logrus.Logger
}

func NewService(users repo.UserRepository, sessions repo.SessionRepository, movements repo.MovementRepository, logger *logrus.Logger) *Service {
	return &Service{Users: users, Sessions: sessions, Movements: movements, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register hashes the password and inserts the user. The pre-insert
// existence check answers the common duplicate case; the unique index on
// email backstops the check-then-insert race, and both paths surface as
// ErrEmailTaken.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if _, err := s.Users.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Name: in.Name, Email: in.Email, Password: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login validates credentials and mints a fresh session token. Unknown
// email and wrong password are indistinguishable to the caller. Multiple
// outstanding sessions per user are permitted.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}

	token, err := helpers.NewSessionToken()
	if err != nil {
		return "", err
	}
	if err := s.Sessions.Create(ctx, entity.Session{Token: token, UserID: u.ID}); err != nil {
		return "", err
	}
	return token, nil
}

// Logout deletes the session row matching the token, if any. Logging out
// twice with the same token succeeds both times.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.Sessions.Delete(ctx, token)
}

// ResolveToken maps a bearer token to its user. A session miss and an
// orphaned session (user gone) both report ErrUnauthenticated. The
// returned user has the password hash stripped.
func (s *Service) ResolveToken(ctx context.Context, token string) (*entity.User, error) {
	uid, err := s.Sessions.GetUserID(ctx, token)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	u, err := s.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	stripped := *u
	stripped.Password = ""
	return &stripped, nil
}

type MovementInput struct {
	Date        string
	Description string
	Value       float64
	Type        string
}

// CreateMovement stamps the entry with its owner and inserts it.
// Ownership is established here and never reassigned.
func (s *Service) CreateMovement(ctx context.Context, userID string, in MovementInput) (*entity.Movement, error) {
	m := &entity.Movement{
		UserID:      userID,
		Date:        in.Date,
		Description: in.Description,
		Value:       in.Value,
		Type:        in.Type,
	}
	if err := s.Movements.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListMovements returns the caller's movements in insertion order.
func (s *Service) ListMovements(ctx context.Context, userID string) ([]entity.Movement, error) {
	return s.Movements.ListByUser(ctx, userID)
}
