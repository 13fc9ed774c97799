package controllers

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/backend/auth"
	"learnhub/backend/utils"
)

type UserController struct {
	Auth *auth.Service
}

func NewUserController(authSvc *auth.Service) *UserController {
	return &UserController{Auth: authSvc}
}

// GetProfile returns the active session's public fields.
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	session, ok, err := uc.Auth.CurrentUser()
	if err != nil {
		return utils.InternalServerError(c, "Could not read session")
	}
	if !ok {
		return utils.Unauthorized(c, "Not logged in")
	}

	return c.JSON(fiber.Map{
		"id":        session.UserID,
		"name":      session.Name,
		"email":     session.Email,
		"loginTime": session.LoginTime,
	})
}
