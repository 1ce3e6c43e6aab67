package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ecofinds_backend/models"
	"ecofinds_backend/utils"
)

var (
	// ErrValidation marks malformed signup/login input.
	ErrValidation = errors.New("invalid input")

	// ErrEmailTaken means an account with that email already exists.
	// Uniqueness is enforced here, at creation time only.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// a login attempt cannot probe which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound means the referenced user id does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// UserStore is the persistence contract for accounts, with the same two
// providers as the catalog (memory, gorm).
type UserStore interface {
	Create(u models.User) (models.User, error)
	FindByEmail(email string) (models.User, error)
	FindByID(id string) (models.User, error)
}

// Provider owns signup and login. Credentials are bcrypt-hashed before they
// reach the store; the plaintext never leaves this package.
type Provider struct {
	store UserStore
}

func NewProvider(store UserStore) *Provider {
	return &Provider{store: store}
}

func (p *Provider) SignUp(email, password, username string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	if _, err := p.store.FindByEmail(email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  hash,
		Username:  username,
		Purchases: []string{},
		Cart:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return p.store.Create(user)
}

func (p *Provider) Authenticate(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := p.store.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Get looks an account up by id, for profile reads.
func (p *Provider) Get(id string) (models.User, error) {
	return p.store.FindByID(id)
}
