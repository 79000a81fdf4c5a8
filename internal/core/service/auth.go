package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/ecogoods/storefront/internal/core/domain"
	"github.com/ecogoods/storefront/internal/core/port"
	"golang.org/x/crypto/bcrypt"
)

var _ port.Registrar = (*AuthService)(nil)
var _ port.Authenticator = (*AuthService)(nil)
var _ port.ProfileKeeper = (*AuthService)(nil)

// AuthService keeps the single local profile record. Passwords are
// hashed before they touch the snapshot, but login is deliberately
// permissive: matching the stored email is enough.
type AuthService struct {
	mu      sync.Mutex
	store   port.SnapshotStore
	current *domain.User
}

func NewAuthService(store port.SnapshotStore) *AuthService {
	s := &AuthService{store: store}
	s.current = loadUser(store)
	return s
}

func (s *AuthService) Register(name, email, password string) (domain.User, error) {
	const op = "AuthService.Register"

	if name == "" || email == "" || password == "" {
		return domain.User{}, fmt.Errorf("%s: name, email and password are required", op)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: failed to hash password: %w", op, err)
	}

	u := domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &u
	s.persist()

	return redacted(u), nil
}

func (s *AuthService) Login(email, password string) (domain.User, error) {
	const op = "AuthService.Login"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || !strings.EqualFold(s.current.Email, email) {
		return domain.User{}, fmt.Errorf("%s: %q: %w", op, email, domain.ErrUnknownUser)
	}

	return redacted(*s.current), nil
}

func (s *AuthService) Logout() {
	const op = "AuthService.Logout"
	log := slog.With("op", op)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.store.Delete(keyUser); err != nil {
		log.Error("failed to delete user snapshot", "err", err)
	}
}

func (s *AuthService) Current() (domain.User, error) {
	const op = "AuthService.Current"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrUnknownUser)
	}
	return redacted(*s.current), nil
}

// UpdateProfile merges the non-empty fields into the stored profile.
func (s *AuthService) UpdateProfile(fields domain.User) (domain.User, error) {
	const op = "AuthService.UpdateProfile"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrUnknownUser)
	}

	if fields.Name != "" {
		s.current.Name = fields.Name
	}
	if fields.Email != "" {
		s.current.Email = fields.Email
	}
	if fields.Address != "" {
		s.current.Address = fields.Address
	}
	if fields.Phone != "" {
		s.current.Phone = fields.Phone
	}
	s.persist()

	return redacted(*s.current), nil
}

func (s *AuthService) persist() {
	const op = "AuthService.persist"
	log := slog.With("op", op)

	data, err := json.Marshal(toStoredUser(*s.current))
	if err != nil {
		log.Error("failed to encode user snapshot", "err", err)
		return
	}
	if err := s.store.Set(keyUser, data); err != nil {
		log.Error("failed to write user snapshot", "err", err)
	}
}

func loadUser(store port.SnapshotStore) *domain.User {
	const op = "service.loadUser"
	log := slog.With("op", op)

	data, err := store.Get(keyUser)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Warn("failed to read user snapshot", "err", err)
		}
		return nil
	}

	var stored storedUser
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Warn("malformed user snapshot", "err", err)
		return nil
	}
	u := stored.toDomain()
	return &u
}

func redacted(u domain.User) domain.User {
	u.PasswordHash = ""
	return u
}

type storedUser struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

func toStoredUser(u domain.User) storedUser {
	return storedUser(u)
}

func (u storedUser) toDomain() domain.User {
	return domain.User(u)
}
