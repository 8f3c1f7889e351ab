package featured

import (
	"github.com/gofiber/fiber/v2"
)

const defaultRailSize = 8

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler { return &Handler{service: s} }

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products/featured", h.getFeatured)
}

func (h *Handler) getFeatured(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultRailSize)
	if limit <= 0 {
		limit = defaultRailSize
	}
	return c.JSON(h.service.Rails(limit))
}
