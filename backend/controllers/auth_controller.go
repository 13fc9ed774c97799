package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"learnhub/backend/auth"
	"learnhub/backend/utils"
)

type AuthController struct {
	Auth *auth.Service
}

func NewAuthController(authSvc *auth.Service) *AuthController {
	return &AuthController{Auth: authSvc}
}

// Register creates a new account from a JSON body of name/email/password.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Auth.Register(input.Name, input.Email, input.Password)
	if err != nil {
		return authError(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, "Account created successfully", fiber.Map{
		"user": user,
	})
}

// Login authenticates and replaces the active session.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	session, err := ac.Auth.Login(input.Email, input.Password)
	if err != nil {
		return authError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, "Login successful", fiber.Map{
		"user": session,
	})
}

// Logout clears the session; calling it while logged out still succeeds.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Auth.Logout(); err != nil {
		return utils.InternalServerError(c, "Could not clear session")
	}
	return utils.Success(c, fiber.StatusOK, "Logged out", nil)
}

// authError maps the auth error taxonomy to HTTP statuses.
func authError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrValidation):
		return utils.Error(c, fiber.StatusUnprocessableEntity, err)
	case errors.Is(err, auth.ErrDuplicateEmail):
		return utils.Error(c, fiber.StatusConflict, err)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return utils.Error(c, fiber.StatusUnauthorized, err)
	default:
		return utils.InternalServerError(c, err.Error())
	}
}
