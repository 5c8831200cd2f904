package analysis

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/dto"
	"github.com/Gaurav-yadav-03/moodscape-flow/internal/middleware"
)

// HistoryProvider supplies a user's recent mood history for the
// trend-analysis action.
type HistoryProvider interface {
	MoodHistory(ctx context.Context, userID uuid.UUID, days int) ([]MoodDay, error)
}

type Handler struct {
	analyzer *Analyzer
	history  HistoryProvider
}

func NewHandler(analyzer *Analyzer, history HistoryProvider) *Handler {
	return &Handler{analyzer: analyzer, history: history}
}

type AnalyzeRequest struct {
	Content string `json:"content"`
	Action  string `json:"action"`
}

type AnalyzeResponse struct {
	Result     string   `json:"result"`
	Source     string   `json:"source"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Analyze runs a single ad-hoc analysis action on caller-supplied text.
// The trend-analysis action ignores the content field and reads the
// caller's stored mood history instead.
func (h *Handler) Analyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	action := Action(req.Action)
	if !ValidAction(action) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Unknown action: must be summarize, detect-mood, reflect or trend-analysis",
		})
	}

	if action == ActionTrend {
		userID, err := middleware.UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		history, err := h.history.MoodHistory(c.UserContext(), userID, 30)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
		return c.JSON(AnalyzeResponse{
			Result: h.analyzer.TrendNarrative(c.UserContext(), history),
			Source: "chain",
		})
	}

	if err := CheckContent(req.Content); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	if action == ActionDetectMood {
		mood := h.analyzer.DetectMood(c.UserContext(), req.Content)
		return c.JSON(AnalyzeResponse{
			Result:     mood.Mood,
			Source:     mood.Source,
			Confidence: &mood.Confidence,
		})
	}

	result, source := h.analyzer.Run(c.UserContext(), action, req.Content)
	return c.JSON(AnalyzeResponse{Result: result, Source: source})
}
