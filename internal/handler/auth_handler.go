package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/weddingplanner-backend/internal/models"
	"github.com/sefazor/weddingplanner-backend/internal/service"
	"github.com/sefazor/weddingplanner-backend/pkg/utils"
)

type AuthHandler struct {
	authService  *service.AuthService
	validator    *utils.Validator
	cookieName   string
	cookieSecure bool
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator, cookieName string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		validator:    validator,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		var fields utils.ValidationErrors
		if errors.As(err, &fields) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(models.FieldErrorResponse("Validation failed", fields))
		}
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	result, err := h.authService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(models.FieldErrorResponse("Validation failed", map[string]string{
				"email": "Email already in use!",
			}))
		}
		return err
	}

	h.setSessionCookie(c, result.Session)

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(result.User, "User registered successfully"))
}

func (h *AuthHandler) CheckLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		var fields utils.ValidationErrors
		if errors.As(err, &fields) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(models.FieldErrorResponse("Validation failed", fields))
		}
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	result, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One message for both unknown email and wrong password
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid login!"))
		}
		return err
	}

	h.setSessionCookie(c, result.Session)

	return c.JSON(models.SuccessResponse(result.User, "Login successful"))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.Cookies(h.cookieName)); err != nil {
		return err
	}

	h.clearSessionCookie(c)

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, session models.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
