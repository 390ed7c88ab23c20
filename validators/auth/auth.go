package authValidator

import (
	"strings"

	"learnhub/models"
	"learnhub/validators/common"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=student instructor"`
	Title    string `json:"title" validate:"max=255"`
	Bio      string `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register validator middleware
func Register() fiber.Handler {
	return common.Body[RegisterRequest]("validatedRegister")
}

// Login validator middleware
func Login() fiber.Handler {
	return common.Body[LoginRequest]("validatedLogin")
}

// Normalize trims the request and applies the default role.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Role == "" {
		r.Role = models.RoleStudent
	}
}
