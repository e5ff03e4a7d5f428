package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Status: "error", Message: message})
}
