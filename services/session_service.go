package services

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"getjoy-backend/client"
	"getjoy-backend/models"
)

// UserService owns the process-wide current-user cell: nil when signed out,
// otherwise the last authenticated or signed-up user. The cell is observable
// and mirrored to a JSON file so a restart restores the session.
type UserService struct {
	api       *client.Client
	storePath string

	mu      sync.RWMutex
	current *models.User
	subs    []func(*models.User)
}

func NewUserService(api *client.Client, storePath string) *UserService {
	s := &UserService{api: api, storePath: storePath}
	s.restore()
	return s
}

func (s *UserService) restore() {
	if s.storePath == "" {
		return
	}
	data, err := os.ReadFile(s.storePath)
	if err != nil {
		return
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		log.Printf("session: ignoring unreadable %s: %v", s.storePath, err)
		return
	}
	s.current = &u
}

func (s *UserService) persist(u *models.User) {
	if s.storePath == "" {
		return
	}
	if u == nil {
		os.Remove(s.storePath)
		return
	}
	data, err := json.Marshal(u)
	if err == nil {
		os.MkdirAll(filepath.Dir(s.storePath), 0o755)
		err = os.WriteFile(s.storePath, data, 0o644)
	}
	if err != nil {
		log.Printf("session: persist failed: %v", err)
	}
}

func (s *UserService) set(u *models.User) {
	s.mu.Lock()
	s.current = u
	subs := append([]func(*models.User){}, s.subs...)
	s.mu.Unlock()

	s.persist(u)
	for _, fn := range subs {
		fn(u)
	}
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *UserService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Subscribe registers fn to run after every login, signup and logout
// transition. fn receives nil on logout.
func (s *UserService) Subscribe(fn func(*models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Login fetches users filtered by email and checks the password in memory;
// the store filters by one field at a time only. The first match wins, and
// the cell is left untouched when nothing matches.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var users []models.User
	if err := s.api.List(ctx, "users", url.Values{"email": {email}}, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			u := users[i]
			s.set(&u)
			return s.CurrentUser(), nil
		}
	}
	return nil, ErrInvalidCredentials
}

type SignupRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup rejects an email that already exists, assigns the next id as
// max(existing)+1 and authenticates the new user. The duplicate check is
// read-before-write and the id assignment can collide under concurrent
// signups; the store offers nothing stronger and the race is an accepted
// limitation of its contract.
func (s *UserService) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	var users []models.User
	if err := s.api.List(ctx, "users", nil, &users); err != nil {
		return nil, err
	}

	var maxID models.NumericID
	for _, u := range users {
		if u.Email == req.Email {
			return nil, ErrDuplicateEmail
		}
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	newUser := models.User{
		ID:       maxID + 1,
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}
	var created models.User
	if err := s.api.Create(ctx, "users", newUser, &created); err != nil {
		return nil, err
	}
	s.set(&created)
	return s.CurrentUser(), nil
}

// Logout clears the cell and the persisted session.
func (s *UserService) Logout() {
	s.set(nil)
}
