package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"restodash/internal/models"
	"restodash/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// ValidationError carries the message the screen shows as an error toast.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return invalid("Please enter a valid email address")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return invalid("Password must be at least 6 characters")
	}
	return nil
}

// Service owns the credential checks the screens used to carry themselves;
// the store trusts whatever Login it is handed, so everything that can
// reject lives here.
type Service struct {
	store *store.Store
	delay time.Duration
}

func NewService(st *store.Store, delay time.Duration) *Service {
	return &Service{store: st, delay: delay}
}

// wait simulates the original submit spinner. Unlike the source's
// fire-and-forget timer it is cancellable: a closed context aborts the
// pending completion.
func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login validates the form, checks the credential against the user
// directory and installs the session on success.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, invalid("Please fill in all fields")
	}
	if err := validateEmail(email); err != nil {
		return models.User{}, err
	}
	if err := validatePassword(password); err != nil {
		return models.User{}, err
	}

	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}

	user, ok := s.store.UserByEmail(email)
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}

	if err := s.store.Login(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("failed to install session: %w", err)
	}
	return user.Sanitized(), nil
}

type SignupInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	AgreeTerms      bool
}

// Signup validates the form and creates a directory entry with role user.
func (s *Service) Signup(ctx context.Context, in SignupInput) (models.User, error) {
	if in.FullName == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return models.User{}, invalid("Please fill in all fields")
	}
	if err := validateEmail(in.Email); err != nil {
		return models.User{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return models.User{}, err
	}
	if in.Password != in.ConfirmPassword {
		return models.User{}, invalid("Passwords do not match")
	}
	if !in.AgreeTerms {
		return models.User{}, invalid("Please agree to the terms and conditions")
	}

	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}

	if _, ok := s.store.UserByEmail(in.Email); ok {
		return models.User{}, ErrEmailTaken
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.store.CreateUser(ctx, models.User{
		FullName:     in.FullName,
		Email:        strings.ToLower(in.Email),
		Role:         models.RoleUser,
		PasswordHash: hash,
	})
	if err != nil {
		return models.User{}, err
	}
	return user.Sanitized(), nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
