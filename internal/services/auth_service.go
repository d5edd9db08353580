package services

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shophood/internal/domain"
	"shophood/internal/store"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("an account with this email already exists")
	ErrBadRole    = errors.New("invalid account role")
)

// AuthService owns signup/login and the sid -> user binding. Sessions are
// ephemeral; only the user records themselves persist via the store.
type AuthService struct {
	Store *store.Store

	mu       sync.Mutex
	sessions map[string]string // sid -> userID
}

func NewAuthService(st *store.Store) *AuthService {
	return &AuthService{Store: st, sessions: make(map[string]string)}
}

func (s *AuthService) Signup(sid, name, email, password string, role domain.Role) (*domain.User, error) {
	if role != domain.RoleConsumer && role != domain.RoleBusiness {
		return nil, ErrBadRole
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	u := domain.User{
		ID:     uuid.NewString(),
		Name:   name,
		Role:   role,
		Email:  email,
		Hash:   string(h),
		Plan:   domain.PlanFree,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + name,
	}

	// The duplicate check and the append must be one transition, or two
	// concurrent signups could both claim the same email.
	err = s.Store.Exec(func(st store.State) (store.Action, error) {
		for _, ex := range st.Users {
			if strings.EqualFold(ex.Email, email) {
				return nil, ErrEmailTaken
			}
		}
		return store.AddUser{User: u}, nil
	})
	if err != nil {
		return nil, err
	}
	s.Store.Dispatch(store.Login{User: u})
	s.bind(sid, u.ID)
	return &u, nil
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	var found *domain.User
	for _, u := range s.Store.State().Users {
		if strings.EqualFold(u.Email, email) {
			found = &u
			break
		}
	}
	if found == nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(found.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	s.Store.Dispatch(store.Login{User: *found})
	s.bind(sid, found.ID)
	return found, nil
}

func (s *AuthService) Logout(sid string) {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
	s.Store.Dispatch(store.Logout{})
}

// CurrentUser resolves the sid cookie to a live user record.
func (s *AuthService) CurrentUser(sid string) (*domain.User, bool) {
	s.mu.Lock()
	userID, ok := s.sessions[sid]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	u, ok := s.Store.State().UserByID(userID)
	if !ok {
		return nil, false
	}
	return &u, true
}

// Upgrade moves a user to the premium plan. Idempotent for already-premium
// accounts.
func (s *AuthService) Upgrade(userID string) (*domain.User, error) {
	u, ok := s.Store.State().UserByID(userID)
	if !ok {
		return nil, ErrBadCreds
	}
	u.Plan = domain.PlanPremium
	s.Store.Dispatch(store.UpdateUser{User: u})
	return &u, nil
}

func (s *AuthService) bind(sid, userID string) {
	s.mu.Lock()
	s.sessions[sid] = userID
	s.mu.Unlock()
}
