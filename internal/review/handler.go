package review

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ecohero/storefront-backend/internal/user"
)

// Handler delegates review operations to the review service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/product/:id<[0-9]+>/reviews", h.getReviews)
	// helpful votes are open to anonymous visitors, like on the storefront
	app.Post("/api/v1/review/:id<[0-9]+>/helpful", h.markHelpful)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/product/:id<[0-9]+>/reviews", h.createReview)
}

type reviewListResponse struct {
	Reviews []Review `json:"reviews"`
	Summary Summary  `json:"summary"`
}

func (h *Handler) getReviews(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	reviews, err := h.service.ListByProduct(productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	summary, err := h.service.Summarize(productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(reviewListResponse{Reviews: reviews, Summary: summary})
}

type createReviewRequest struct {
	Rating   int    `json:"rating"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	UserName string `json:"userName"`
}

func validateReviewPayload(p *createReviewRequest) map[string]string {
	errs := map[string]string{}
	if p.Rating < 1 || p.Rating > 5 {
		errs["rating"] = "rating must be between 1 and 5"
	}
	if p.Title == "" {
		errs["title"] = "title is required"
	}
	if p.Content == "" {
		errs["content"] = "content is required"
	}
	if p.UserName == "" {
		errs["userName"] = "userName is required"
	}
	return errs
}

func (h *Handler) createReview(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	payload := new(createReviewRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateReviewPayload(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	created, err := h.service.Add(Review{
		ProductID: productID,
		UserID:    "user" + strconv.Itoa(userID),
		UserName:  payload.UserName,
		Rating:    payload.Rating,
		Title:     payload.Title,
		Content:   payload.Content,
		Verified:  true,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) markHelpful(c *fiber.Ctx) error {
	reviewID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	helpful, err := h.service.MarkHelpful(reviewID)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"reviewId": reviewID, "helpful": helpful})
}
