package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"faq-bot/internal/http/view"
	"faq-bot/internal/models"
	"faq-bot/internal/service"
)

const (
	msgEmptyQuestion = "Please enter a question."
	msgSearchFailed  = "An error occurred while searching: "
)

// Asker is satisfied by *service.FAQService.
type Asker interface {
	Ask(ctx context.Context, question string) (service.Answer, error)
	Items() []models.FAQItem
	Count() int
}

type FAQHandler struct {
	faqs Asker
	log  *zap.Logger
}

func NewFAQHandler(faqs Asker, log *zap.Logger) *FAQHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FAQHandler{faqs: faqs, log: log}
}

// Index renders the empty form.
func (h *FAQHandler) Index(c *fiber.Ctx) error {
	return h.render(c, view.Page{})
}

// Submit answers the form field "question". Validation and matching
// errors are shown on the page, never returned to fiber.
func (h *FAQHandler) Submit(c *fiber.Ctx) error {
	page := view.Page{Question: strings.TrimSpace(c.FormValue("question"))}

	if page.Question == "" {
		page.Error = msgEmptyQuestion
		return h.render(c, page)
	}

	answer, err := h.ask(c.UserContext(), page.Question)
	if err != nil {
		h.log.Error("search failed", zap.String("question", page.Question), zap.Error(err))
		page.Error = msgSearchFailed + err.Error()
		return h.render(c, page)
	}

	page.Match = &answer.Item
	return h.render(c, page)
}

// ask turns a panic below the handler into an error so the caller can
// still render a response.
func (h *FAQHandler) ask(ctx context.Context, question string) (answer service.Answer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", service.ErrMatchingFailure, r)
		}
	}()
	return h.faqs.Ask(ctx, question)
}

func (h *FAQHandler) render(c *fiber.Ctx, page view.Page) error {
	body, err := view.Render(page)
	if err != nil {
		h.log.Error("render page", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	c.Type("html", "utf-8")
	return c.Send(body)
}

// GetAllFAQs lists the loaded collection in source order.
func (h *FAQHandler) GetAllFAQs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.faqs.Items(),
	})
}

// Ask is the JSON variant of Submit.
func (h *FAQHandler) Ask(c *fiber.Ctx) error {
	var req models.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	answer, err := h.ask(c.UserContext(), req.Question)
	if errors.Is(err, service.ErrEmptyQuestion) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msgEmptyQuestion,
		})
	}
	if err != nil {
		h.log.Error("search failed", zap.String("question", req.Question), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": msgSearchFailed + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": models.AskResponse{
			Question: answer.Item.Question,
			Answer:   answer.Item.Answer,
			Score:    answer.Score,
		},
	})
}

func (h *FAQHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"faqs":   h.faqs.Count(),
	})
}
