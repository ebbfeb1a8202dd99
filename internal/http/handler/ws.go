package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"faq-bot/internal/service"
)

const wsAskTimeout = 5 * time.Second

// UpgradeWS only lets websocket handshakes through to AskWS.
func UpgradeWS(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// AskWS treats every text frame as a question and replies with one JSON
// message. Errors are reported in-band and keep the connection open.
func (h *FAQHandler) AskWS(c *websocket.Conn) {
	log := h.log.With(zap.String("remote", c.RemoteAddr().String()))
	log.Debug("ws connected")
	defer log.Debug("ws disconnected")

	for {
		mt, msg, err := c.ReadMessage()
		if err != nil {
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		if err := c.WriteJSON(h.wsReply(string(msg))); err != nil {
			log.Warn("ws write failed", zap.Error(err))
			return
		}
	}
}

func (h *FAQHandler) wsReply(question string) fiber.Map {
	ctx, cancel := context.WithTimeout(context.Background(), wsAskTimeout)
	defer cancel()

	answer, err := h.ask(ctx, question)
	switch {
	case errors.Is(err, service.ErrEmptyQuestion):
		return fiber.Map{"type": "error", "message": msgEmptyQuestion}
	case err != nil:
		h.log.Error("search failed", zap.String("question", question), zap.Error(err))
		return fiber.Map{"type": "error", "message": msgSearchFailed + err.Error()}
	}

	return fiber.Map{
		"type":     "answer",
		"question": answer.Item.Question,
		"answer":   answer.Item.Answer,
		"score":    answer.Score,
	}
}
