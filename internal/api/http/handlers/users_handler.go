package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/wellness-service/internal/api/dto"
	"github.com/spec-kit/wellness-service/internal/service"
	util "github.com/spec-kit/wellness-service/pkg/util"
)

// UsersHandler exposes profile registration.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Register handles POST /register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	user, err := h.users.Register(c.Context(), service.RegistrationInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Age:         req.Age,
		Gender:      req.Gender,
		Profession:  req.Profession,
		WorkMode:    req.WorkMode,
		StressLevel: req.StressLevel,
		SleepHours:  req.SleepHours,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.RegisterResponse{
		Message: "User Registered Successfully",
		UserID:  user.ID,
	})
}
