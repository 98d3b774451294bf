// Package repositorytest provides in-memory repository implementations
// for handler and service tests.
package repositorytest

import (
	"context"
	"strconv"
	"sync"

	"github.com/oksasatya/mywallet-api/internal/domain/entity"
	"github.com/oksasatya/mywallet-api/internal/domain/repository"
)

type UserRepo struct {
	mu     sync.Mutex
	seq    int
	byID   map[string]entity.User
	byMail map[string]string
}

func NewUserRepo() *UserRepo {
	return &UserRepo{byID: map[string]entity.User{}, byMail: map[string]string{}}
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byMail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	r.seq++
	u.ID = "u-" + strconv.Itoa(r.seq)
	r.byID[u.ID] = *u
	r.byMail[u.Email] = u.ID
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := u
	return &out, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byMail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

// Delete removes a user directly, for orphaned-session tests.
func (r *UserRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		delete(r.byMail, u.Email)
		delete(r.byID, id)
	}
}

type SessionRepo struct {
	mu     sync.Mutex
	tokens map[string]string
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{tokens: map[string]string{}}
}

func (r *SessionRepo) Create(_ context.Context, s entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[s.Token] = s.UserID
	return nil
}

func (r *SessionRepo) GetUserID(_ context.Context, token string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	uid, ok := r.tokens[token]
	if !ok {
		return "", repository.ErrNotFound
	}
	return uid, nil
}

func (r *SessionRepo) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}

// Count reports how many sessions are outstanding.
func (r *SessionRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

type MovementRepo struct {
	mu   sync.Mutex
	seq  int64
	rows []entity.Movement
}

func NewMovementRepo() *MovementRepo {
	return &MovementRepo{}
}

func (r *MovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	m.ID = r.seq
	r.rows = append(r.rows, *m)
	return nil
}

func (r *MovementRepo) ListByUser(_ context.Context, userID string) ([]entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Movement, 0)
	for _, m := range r.rows {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

var (
	_ repository.UserRepository     = (*UserRepo)(nil)
	_ repository.SessionRepository  = (*SessionRepo)(nil)
	_ repository.MovementRepository = (*MovementRepo)(nil)
)
