package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/weddingplanner-backend/internal/middleware"
	"github.com/sefazor/weddingplanner-backend/internal/models"
	"github.com/sefazor/weddingplanner-backend/internal/service"
	"github.com/sefazor/weddingplanner-backend/pkg/utils"
)

type WeddingHandler struct {
	weddingService *service.WeddingService
	authService    *service.AuthService
	validator      *utils.Validator
}

func NewWeddingHandler(weddingService *service.WeddingService, authService *service.AuthService, validator *utils.Validator) *WeddingHandler {
	return &WeddingHandler{
		weddingService: weddingService,
		authService:    authService,
		validator:      validator,
	}
}

// Index is the public landing listing: every wedding, no guest detail.
func (h *WeddingHandler) Index(c *fiber.Ctx) error {
	weddings, err := h.weddingService.GetAll()
	if err != nil {
		return err
	}

	return c.JSON(models.SuccessResponse(fiber.Map{
		"weddings": weddings,
	}, ""))
}

// Dashboard lists every wedding with its guests and, per guest, the user.
func (h *WeddingHandler) Dashboard(c *fiber.Ctx) error {
	userID, _ := middleware.CurrentUserID(c)

	user, err := h.authService.GetUser(userID)
	if err != nil {
		return err
	}

	weddings, err := h.weddingService.GetAllWithGuests()
	if err != nil {
		return err
	}

	return c.JSON(models.SuccessResponse(fiber.Map{
		"user":     user,
		"weddings": weddings,
	}, ""))
}

// NewWedding describes the creation form: field names and constraints.
func (h *WeddingHandler) NewWedding(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(fiber.Map{
		"fields": fiber.Map{
			"wedder_one": "required",
			"wedder_two": "required",
			"date":       "required, must be in the future",
			"address":    "required",
		},
	}, ""))
}

func (h *WeddingHandler) CreateWedding(c *fiber.Ctx) error {
	var req models.WeddingRequest
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

	userID, _ := middleware.CurrentUserID(c)

	wedding, err := h.weddingService.Create(userID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(wedding, "Wedding created successfully"))
}

func (h *WeddingHandler) ViewWedding(c *fiber.Ctx) error {
	weddingID, err := parseWeddingID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding ID"))
	}

	wedding, err := h.weddingService.GetWithGuests(weddingID)
	if err != nil {
		if errors.Is(err, service.ErrWeddingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Wedding not found"))
		}
		return err
	}

	return c.JSON(models.SuccessResponse(wedding, ""))
}

func (h *WeddingHandler) DeleteWedding(c *fiber.Ctx) error {
	weddingID, err := parseWeddingID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding ID"))
	}

	userID, _ := middleware.CurrentUserID(c)

	if err := h.weddingService.Delete(userID, weddingID); err != nil {
		switch {
		case errors.Is(err, service.ErrWeddingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Wedding not found"))
		case errors.Is(err, service.ErrNotWeddingOwner):
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("You don't have permission to delete this wedding"))
		default:
			return err
		}
	}

	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func parseWeddingID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("weddingId"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
