package order

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ecohero/storefront-backend/internal/cart"
	"github.com/ecohero/storefront-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.checkout)
	app.Get("/api/v1/orders", h.listOrders)
	app.Get("/api/v1/order/:id<[0-9]+>", h.getOrder)
}

type checkoutRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"paymentMethod"`
	PromoCode     string `json:"promoCode"`
}

func validateCheckoutPayload(p *checkoutRequest) map[string]string {
	errs := map[string]string{}
	required := map[string]string{
		"firstName":     p.FirstName,
		"lastName":      p.LastName,
		"email":         p.Email,
		"address":       p.Address,
		"city":          p.City,
		"state":         p.State,
		"zipCode":       p.ZipCode,
		"country":       p.Country,
		"paymentMethod": p.PaymentMethod,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = field + " is required"
		}
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		errs["email"] = "email is invalid"
	}
	return errs
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateCheckoutPayload(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	details := ShippingDetails{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Address:   payload.Address,
		City:      payload.City,
		State:     payload.State,
		ZipCode:   payload.ZipCode,
		Country:   payload.Country,
		Phone:     payload.Phone,
	}

	created, err := h.service.Checkout(userID, details, payload.PaymentMethod, payload.PromoCode)
	if err != nil {
		switch err {
		case ErrEmptyCart, cart.ErrInvalidPromo:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"orders": orders})
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	o, err := h.service.GetForUser(userID, orderID)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(o)
}
