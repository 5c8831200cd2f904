package journal

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/analysis"
	"github.com/Gaurav-yadav-03/moodscape-flow/internal/dto"
	"github.com/Gaurav-yadav-03/moodscape-flow/internal/middleware"
)

type Handler struct {
	service  *Service
	analyzer *analysis.Analyzer
}

func NewHandler(service *Service, analyzer *analysis.Analyzer) *Handler {
	return &Handler{service: service, analyzer: analyzer}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, err := h.service.Create(c.UserContext(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateDate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, ErrInvalidMood), errors.Is(err, ErrInvalidDate), errors.Is(err, ErrEmptyContent):
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.service.List(c.UserContext(), userID, c.QueryInt("page", 1), c.QueryInt("limit", 20))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(resp)
}

func (h *Handler) Search(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	query := c.Query("q")
	if query == "" {
		return badRequest(c, "Query parameter q is required")
	}

	entries, err := h.service.Search(c.UserContext(), userID, query, c.QueryInt("limit", 20))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"entries": entries, "query": query})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	userID, entryID, ok := identify(c)
	if !ok {
		return nil
	}

	entry, err := h.service.Get(c.UserContext(), userID, entryID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return notFound(c)
		}
		return internalError(c)
	}
	return c.JSON(entry)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	userID, entryID, ok := identify(c)
	if !ok {
		return nil
	}

	var req UpdateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, err := h.service.Update(c.UserContext(), userID, entryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEntryNotFound):
			return notFound(c)
		case errors.Is(err, ErrInvalidMood), errors.Is(err, ErrEmptyContent):
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}
	return c.JSON(entry)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, entryID, ok := identify(c)
	if !ok {
		return nil
	}

	if err := h.service.Delete(c.UserContext(), userID, entryID); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return notFound(c)
		}
		return internalError(c)
	}
	return c.JSON(fiber.Map{"message": "Entry deleted"})
}

// Analyze runs the full analysis chain over a stored entry and persists
// the summary and reflection onto it.
func (h *Handler) Analyze(c *fiber.Ctx) error {
	userID, entryID, ok := identify(c)
	if !ok {
		return nil
	}

	var req AnalyzeEntryRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	entry, err := h.service.Get(c.UserContext(), userID, entryID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return notFound(c)
		}
		return internalError(c)
	}

	if err := analysis.CheckContent(entry.Content); err != nil {
		return badRequest(c, err.Error())
	}

	result := h.analyzer.AnalyzeEntry(c.UserContext(), entry.Content)
	if err := h.service.SaveAnalysis(c.UserContext(), entry, result, req.ApplyMood); err != nil {
		return internalError(c)
	}

	return c.JSON(AnalyzeEntryResponse{
		Entry:         *entry,
		Summary:       result.Summary,
		Reflection:    result.Reflection,
		SuggestedMood: result.Mood.Mood,
		Confidence:    result.Mood.Confidence,
		Keywords:      result.Keywords,
		Source:        result.Mood.Source,
	})
}

// identify pulls the authenticated user and the :id path param, writing
// the error response itself when either is missing.
func identify(c *fiber.Ctx) (uuid.UUID, uuid.UUID, bool) {
	userID, err := middleware.UserID(c)
	if err != nil {
		_ = unauthorized(c)
		return uuid.Nil, uuid.Nil, false
	}
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = badRequest(c, "Invalid entry id")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, entryID, true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: "Entry not found",
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
