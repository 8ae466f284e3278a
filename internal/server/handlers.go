package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rohmanhakim/msgrender/internal/build"
	"go.uber.org/zap"
)

type renderRequest struct {
	Message string `json:"message"`
}

type renderResponse struct {
	HTML      string `json:"html"`
	Direction string `json:"direction"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": build.FullVersion(),
	})
}

// handleRender renders one message. The pipeline is fail-soft, so the only
// error surface here is a malformed request body.
func (s *Server) handleRender(c *fiber.Ctx) error {
	var req renderRequest
	if err := c.BodyParser(&req); err != nil {
		s.logger.Warn("bad render request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Error: "request body must be JSON with a \"message\" field",
		})
	}

	rendered := s.pipeline.Render(req.Message)
	return c.JSON(renderResponse{
		HTML:      rendered.HTML(),
		Direction: rendered.Direction().String(),
	})
}
