package main

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/ecohero/storefront-backend/internal/address"
	"github.com/ecohero/storefront-backend/internal/banner"
	"github.com/ecohero/storefront-backend/internal/cart"
	"github.com/ecohero/storefront-backend/internal/category"
	"github.com/ecohero/storefront-backend/internal/config"
	"github.com/ecohero/storefront-backend/internal/content"
	"github.com/ecohero/storefront-backend/internal/favorite"
	"github.com/ecohero/storefront-backend/internal/featured"
	"github.com/ecohero/storefront-backend/internal/order"
	"github.com/ecohero/storefront-backend/internal/product"
	"github.com/ecohero/storefront-backend/internal/recommended"
	"github.com/ecohero/storefront-backend/internal/review"
	"github.com/ecohero/storefront-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(checkMiddleware)
	if cfg.SimulatedLatency > 0 {
		app.Use(latencyMiddleware(cfg.SimulatedLatency))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// repositories: postgres when DATABASE_URL is set, otherwise seeded
	// in-memory stores so the server runs standalone
	var (
		productRepo  product.Repository
		reviewRepo   review.Repository
		categoryRepo category.Repository
		bannerRepo   banner.Repository
		contentRepo  content.Repository
		userRepo     user.Repository
		cartRepo     cart.Repository
		orderRepo    order.Repository
		addressRepo  address.Repository
	)
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()

		productRepo = product.NewPostgresRepository(db)
		reviewRepo = review.NewPostgresRepository(db)
		categoryRepo = category.NewPostgresRepository(db)
		bannerRepo = banner.NewPostgresRepository(db)
		contentRepo = content.NewPostgresRepository(db)
		userRepo = user.NewPostgresRepository(db)
		cartRepo = cart.NewPostgresRepository(db)
		orderRepo = order.NewPostgresRepository(db)
		addressRepo = address.NewPostgresRepository(db)
	} else {
		productRepo = product.NewInMemoryRepository(product.DefaultCatalog())
		reviewRepo = review.NewInMemoryRepository(review.DefaultReviews())
		categoryRepo = category.NewInMemoryRepository(category.DefaultCategories())
		bannerRepo = banner.NewInMemoryRepository(banner.DefaultBanners())
		contentRepo = content.NewInMemoryRepository(content.DefaultTestimonials(), content.DefaultBlogPosts())
		userRepo = user.NewInMemoryRepository(nil)
		cartRepo = cart.NewInMemoryRepository()
		orderRepo = order.NewInMemoryRepository()
		addressRepo = address.NewInMemoryRepository()
	}

	// user and product services are shared by most other handlers
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)

	cartService := cart.NewService(cartRepo, productService)

	// public routes go in before the JWT middleware
	userHandler.RegisterPublicRoutes(app)

	reviewHandler := review.NewHandler(review.NewService(reviewRepo))
	reviewHandler.RegisterPublicRoutes(app)

	recommendedHandler := recommended.NewHandler(recommended.NewService(productService, nil))
	recommendedHandler.RegisterPublicRoutes(app)

	featuredHandler := featured.NewHandler(featured.NewService(productService))
	featuredHandler.RegisterPublicRoutes(app)

	categoryHandler := category.NewHandler(category.NewService(categoryRepo))
	categoryHandler.RegisterPublicRoutes(app)

	bannerHandler := banner.NewHandler(banner.NewService(bannerRepo))
	bannerHandler.RegisterPublicRoutes(app)

	contentHandler := content.NewHandler(content.NewService(contentRepo))
	contentHandler.RegisterPublicRoutes(app)

	// register product public routes last so /api/v1/product/:slug does not
	// shadow the more specific endpoints above
	productHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		// allow unauthenticated GETs on catalog paths that can also be hit
		// with a trailing sub-path after the middleware is mounted
		Filter: func(c *fiber.Ctx) bool {
			if c.Method() != fiber.MethodGet {
				return false
			}
			p := c.Path()
			if strings.HasPrefix(p, "/api/v1/product/") {
				seg := strings.SplitN(strings.TrimPrefix(p, "/api/v1/product/"), "/", 2)[0]
				if _, err := strconv.Atoi(seg); err == nil {
					return true
				}
			}
			return false
		},
	}))

	userHandler.RegisterProtectedRoutes(app)
	reviewHandler.RegisterProtectedRoutes(app)

	cartHandler := cart.NewHandler(cartService)
	cartHandler.RegisterProtectedRoutes(app)

	orderHandler := order.NewHandler(order.NewService(orderRepo, cartService, userService, nil))
	orderHandler.RegisterProtectedRoutes(app)

	favoriteHandler := favorite.NewHandler(favorite.NewService(userService, productService))
	favoriteHandler.RegisterProtectedRoutes(app)

	addressHandler := address.NewHandler(address.NewService(addressRepo, userService))
	addressHandler.RegisterProtectedRoutes(app)

	app.Listen(cfg.Addr)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func checkMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	fmt.Printf("URL = %s, Method = %s, Start Time = %v\n", c.OriginalURL(), c.Method(), start)
	return c.Next()
}

func latencyMiddleware(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		time.Sleep(d)
		return c.Next()
	}
}
