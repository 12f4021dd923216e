package service

import (
	"context"
	"strings"

	"github.com/spec-kit/wellness-service/internal/domain"
	"github.com/spec-kit/wellness-service/internal/repository"
	util "github.com/spec-kit/wellness-service/pkg/util"
)

// UserService handles profile registration. Profiles are write-once; there
// is no update path.
type UserService struct {
	users repository.UserRepository
}

// RegistrationInput describes the registration payload.
type RegistrationInput struct {
	FullName    string
	Email       string
	Age         int
	Gender      string
	Profession  string
	WorkMode    string
	StressLevel string
	SleepHours  *float64
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register stores a new profile and returns it with the assigned ID.
func (s *UserService) Register(ctx context.Context, input RegistrationInput) (*domain.User, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	if fullName == "" || email == "" {
		return nil, util.NewValidationError("fullName and email required", nil)
	}

	user := &domain.User{
		FullName:    fullName,
		Email:       email,
		Age:         input.Age,
		Gender:      input.Gender,
		Profession:  input.Profession,
		WorkMode:    input.WorkMode,
		StressLevel: input.StressLevel,
		SleepHours:  input.SleepHours,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
