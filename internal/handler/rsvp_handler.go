package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/weddingplanner-backend/internal/middleware"
	"github.com/sefazor/weddingplanner-backend/internal/models"
	"github.com/sefazor/weddingplanner-backend/internal/service"
)

type RSVPHandler struct {
	rsvpService *service.RSVPService
}

func NewRSVPHandler(rsvpService *service.RSVPService) *RSVPHandler {
	return &RSVPHandler{
		rsvpService: rsvpService,
	}
}

func (h *RSVPHandler) RSVP(c *fiber.Ctx) error {
	weddingID, err := parseWeddingID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding ID"))
	}

	userID, _ := middleware.CurrentUserID(c)

	if _, err := h.rsvpService.Add(userID, weddingID); err != nil {
		if errors.Is(err, service.ErrWeddingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Wedding not found"))
		}
		return err
	}

	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (h *RSVPHandler) UnRSVP(c *fiber.Ctx) error {
	weddingID, err := parseWeddingID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding ID"))
	}

	userID, _ := middleware.CurrentUserID(c)

	if err := h.rsvpService.Remove(userID, weddingID); err != nil {
		if errors.Is(err, service.ErrRSVPNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("RSVP not found"))
		}
		return err
	}

	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}
