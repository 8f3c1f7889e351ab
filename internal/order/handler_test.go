package order

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/ecohero/storefront-backend/internal/cart"
	"github.com/ecohero/storefront-backend/internal/product"
)

const validCheckoutBody = `{
	"firstName":"Jane","lastName":"Doe","email":"jane@example.com",
	"address":"1 Green Way","city":"Portland","state":"OR","zipCode":"97201",
	"country":"US","phone":"555-0101","paymentMethod":"card"
}`

func makeApp(t *testing.T) (*fiber.App, *cart.Service) {
	t.Helper()
	productService := product.NewService(product.NewInMemoryRepository(product.DefaultCatalog()))
	cartService := cart.NewService(cart.NewInMemoryRepository(), productService)
	svc := NewService(NewInMemoryRepository(), cartService, nil, rand.New(rand.NewSource(1)))
	h := NewHandler(svc)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id}
				c.Locals("user", &jwt.Token{Claims: claims})
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app, cartService
}

func doJSON(t *testing.T, app *fiber.App, method, target, body, userID string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	app, _ := makeApp(t)
	code, body := doJSON(t, app, "POST", "/api/v1/checkout", validCheckoutBody, "7")
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d: %s", code, body)
	}
	if !strings.Contains(body, "cart is empty") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestCheckout_ValidationErrors(t *testing.T) {
	app, _ := makeApp(t)
	code, body := doJSON(t, app, "POST", "/api/v1/checkout", `{"firstName":"Jane","email":"not-an-email"}`, "7")
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	for _, field := range []string{"lastName", "email", "address", "paymentMethod"} {
		if !strings.Contains(body, field) {
			t.Fatalf("expected field error for %s, got %s", field, body)
		}
	}
}

func TestCheckout_PlacesOrderAndClearsCart(t *testing.T) {
	app, carts := makeApp(t)
	if _, err := carts.AddItem(7, 2, 4); err != nil {
		t.Fatalf("seeding cart failed: %v", err)
	}

	code, body := doJSON(t, app, "POST", "/api/v1/checkout", validCheckoutBody, "7")
	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", code, body)
	}

	var placed Order
	if err := json.Unmarshal([]byte(body), &placed); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if placed.Status != StatusProcessing {
		t.Fatalf("expected processing status, got %q", placed.Status)
	}
	if len(placed.OrderNumber) != 6 {
		t.Fatalf("expected six digit order number, got %q", placed.OrderNumber)
	}
	if placed.Reference == "" {
		t.Fatal("expected a reference")
	}
	if placed.Subtotal.StringFixed(2) != "99.96" {
		t.Fatalf("expected subtotal 99.96, got %s", placed.Subtotal.StringFixed(2))
	}

	// cart is emptied by a successful checkout
	items, _ := carts.Items(7)
	if len(items) != 0 {
		t.Fatalf("expected empty cart after checkout, got %d items", len(items))
	}

	// the order shows up in the user's history
	code, body = doJSON(t, app, "GET", "/api/v1/orders", "", "7")
	if code != 200 || !strings.Contains(body, placed.OrderNumber) {
		t.Fatalf("order missing from history: %d %s", code, body)
	}
}

func TestGetOrder_OwnershipEnforced(t *testing.T) {
	app, carts := makeApp(t)
	carts.AddItem(7, 1, 1)
	code, body := doJSON(t, app, "POST", "/api/v1/checkout", validCheckoutBody, "7")
	if code != fiber.StatusCreated {
		t.Fatalf("checkout failed: %d %s", code, body)
	}
	var placed Order
	json.Unmarshal([]byte(body), &placed)

	target := "/api/v1/order/" + strconv.Itoa(placed.ID)
	code, _ = doJSON(t, app, "GET", target, "", "7")
	if code != 200 {
		t.Fatalf("owner read failed: %d", code)
	}

	// another user gets a 404, not a 403, so order ids are not probeable
	code, _ = doJSON(t, app, "GET", target, "", "8")
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404 for foreign order, got %d", code)
	}
}

func TestCheckout_InvalidPromoRejected(t *testing.T) {
	app, carts := makeApp(t)
	carts.AddItem(7, 1, 1)

	body := strings.Replace(validCheckoutBody, `"paymentMethod":"card"`, `"paymentMethod":"card","promoCode":"NOPE"`, 1)
	code, res := doJSON(t, app, "POST", "/api/v1/checkout", body, "7")
	if code != fiber.StatusBadRequest || !strings.Contains(res, "invalid promo code") {
		t.Fatalf("expected promo rejection, got %d %s", code, res)
	}
}
