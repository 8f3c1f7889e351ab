package product

import (
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.searchProducts)
	app.Get("/api/v1/brands", h.getBrands)
	app.Get("/api/v1/product/:id<[0-9]+>", h.getProductByID)
	// slug route must come after the numeric and any fixed-segment product
	// routes registered elsewhere (related, reviews) to avoid capturing them
	app.Get("/api/v1/product/:slug", h.getProductBySlug)

	// dev-only endpoint to re-seed the catalog, enabled when ALLOW_RESET_CATALOG=1
	app.Post("/dev/reset-catalog", h.resetCatalog)
}

// searchProducts handles the storefront search: free-text query plus
// filter/sort options, all passed as query parameters.
func (h *Handler) searchProducts(c *fiber.Ctx) error {
	filters, ves := parseFilters(c)
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	results := h.service.Search(c.Query("query"), filters)
	return c.JSON(results)
}

func parseFilters(c *fiber.Ctx) (Filters, map[string]string) {
	errs := map[string]string{}
	f := Filters{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
	}

	if v := c.Query("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			errs["minPrice"] = "minPrice must be a decimal number"
		} else {
			f.MinPrice = &d
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			errs["maxPrice"] = "maxPrice must be a decimal number"
		} else {
			f.MaxPrice = &d
		}
	}
	if v := c.Query("features"); v != "" {
		for _, feat := range strings.Split(v, ",") {
			if feat = strings.TrimSpace(feat); feat != "" {
				f.SustainabilityFeatures = append(f.SustainabilityFeatures, feat)
			}
		}
	}
	if v := c.Query("inStock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs["inStock"] = "inStock must be true or false"
		} else {
			f.InStock = &b
		}
	}
	if v := c.Query("sortBy"); v != "" {
		if !ValidSortBy(v) {
			errs["sortBy"] = "unknown sort option"
		} else {
			f.SortBy = SortBy(v)
		}
	}
	return f, errs
}

func (h *Handler) getProductByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

func (h *Handler) getProductBySlug(c *fiber.Ctx) error {
	p, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

func (h *Handler) getBrands(c *fiber.Ctx) error {
	return c.JSON(h.service.Brands())
}

// resetCatalog restores the default seed catalog. Gated behind the
// ALLOW_RESET_CATALOG environment variable; set it to "1" to allow.
func (h *Handler) resetCatalog(c *fiber.Ctx) error {
	if os.Getenv("ALLOW_RESET_CATALOG") != "1" {
		return c.Status(fiber.StatusForbidden).SendString("reset not allowed")
	}
	seed := DefaultCatalog()
	if err := h.service.ResetProducts(seed); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	return c.JSON(seed)
}
