package insights

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/dto"
	"github.com/Gaurav-yadav-03/moodscape-flow/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Streaks(c *fiber.Ctx) error {
	return h.respond(c, func(userID uuid.UUID, today time.Time) (any, error) {
		return h.service.Streaks(c.UserContext(), userID, today)
	})
}

func (h *Handler) Trends(c *fiber.Ctx) error {
	return h.respond(c, func(userID uuid.UUID, today time.Time) (any, error) {
		return h.service.Trends(c.UserContext(), userID, today)
	})
}

func (h *Handler) Calendar(c *fiber.Ctx) error {
	return h.respond(c, func(userID uuid.UUID, today time.Time) (any, error) {
		days, err := h.service.Calendar(c.UserContext(), userID, today)
		if err != nil {
			return nil, err
		}
		return fiber.Map{"days": days}, nil
	})
}

func (h *Handler) Badges(c *fiber.Ctx) error {
	return h.respond(c, func(userID uuid.UUID, today time.Time) (any, error) {
		badges, err := h.service.Badges(c.UserContext(), userID, today)
		if err != nil {
			return nil, err
		}
		return fiber.Map{"badges": badges}, nil
	})
}

func (h *Handler) respond(c *fiber.Ctx, load func(uuid.UUID, time.Time) (any, error)) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	result, err := load(userID, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(result)
}
