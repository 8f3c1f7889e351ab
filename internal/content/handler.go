package content

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/testimonials", h.getTestimonials)
	app.Get("/api/v1/blog", h.getBlogPosts)
}

func (h *Handler) getTestimonials(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"testimonials": h.service.Testimonials()})
}

func (h *Handler) getBlogPosts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"posts": h.service.BlogPosts()})
}
