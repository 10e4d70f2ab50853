package Assistant

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ChatRequest is the chat panel payload.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse carries the assistant reply back to the panel.
type ChatResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RegisterAssistantRoutes wires the chat endpoints onto the app behind the
// provided auth middleware.
func RegisterAssistantRoutes(app *fiber.App, client *Client, verify fiber.Handler) {
	chat := app.Group("/api/assistant", verify)

	chat.Get("/greeting", func(c *fiber.Ctx) error {
		return c.JSON(ChatResponse{Role: "assistant", Content: Greeting})
	})

	chat.Post("/chat", func(c *fiber.Ctx) error {
		var req ChatRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
		prompt := strings.TrimSpace(req.Message)
		if prompt == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Message is required",
			})
		}
		return c.JSON(ChatResponse{Role: "assistant", Content: client.Complete(prompt)})
	})
}
