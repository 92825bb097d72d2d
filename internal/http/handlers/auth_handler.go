package handlers

import (
	"errors"

	applog "feedbackhub/internal/log"
	"feedbackhub/internal/services"
	"feedbackhub/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type signupRequest struct {
	Name       string `json:"name" validate:"required"`
	EmpID      string `json:"emp_id" validate:"required"`
	Email      string `json:"email"`
	Password   string `json:"password" validate:"required"`
	Role       string `json:"role" validate:"required"`
	Department string `json:"department" validate:"required"`
}

type loginRequest struct {
	EmpID    string `json:"emp_id" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

func (h *AuthHandler) SignupInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "This endpoint is for registering users. Please send a POST request with name, emp_id, password, role, and department.",
	})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := validate.Struct(&req); err != nil {
		applog.Security(c, "auth.signup.fail", map[string]any{"reason": "missing_fields"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing fields"})
	}

	u, err := h.Auth.Signup(services.SignupInput{
		Name:       req.Name,
		EmpID:      req.EmpID,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
	})
	if errors.Is(err, services.ErrDuplicateUser) {
		applog.Security(c, "auth.signup.fail", map[string]any{"emp_id": req.EmpID, "reason": "duplicate"})
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "User already exists"})
	}
	if err != nil {
		return err
	}

	applog.Audit(c, "auth.signup", map[string]any{"emp_id": u.EmpID, "role": u.Role})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

func (h *AuthHandler) LoginInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "This endpoint is for logging in. Please send a POST request with emp_id, password, and role.",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}
	if err := validate.Struct(&req); err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "missing_credentials"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing credentials"})
	}

	token, u, err := h.Auth.Login(req.EmpID, req.Password, req.Role)
	if errors.Is(err, services.ErrBadCreds) {
		applog.Security(c, "auth.login.fail", map[string]any{"emp_id": req.EmpID})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
	}
	if errors.Is(err, services.ErrRoleMismatch) {
		applog.Security(c, "auth.login.fail", map[string]any{"emp_id": req.EmpID, "reason": "role_mismatch"})
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Role mismatch"})
	}
	if err != nil {
		return err
	}

	applog.Audit(c, "auth.login", map[string]any{"emp_id": u.EmpID})
	return c.JSON(fiber.Map{
		"token": token,
		"id":    u.EmpID,
		"role":  u.Role,
	})
}
