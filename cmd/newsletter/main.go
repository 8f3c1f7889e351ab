package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/ecohero/storefront-backend/internal/domain/repository"
	"github.com/ecohero/storefront-backend/internal/infrastructure/config"
	"github.com/ecohero/storefront-backend/internal/infrastructure/database/inmemory"
	"github.com/ecohero/storefront-backend/internal/infrastructure/database/postgres"
	httpHandler "github.com/ecohero/storefront-backend/internal/interface/http/handler"
	"github.com/ecohero/storefront-backend/internal/interface/http/router"
	"github.com/ecohero/storefront-backend/internal/interface/presenter"
	"github.com/ecohero/storefront-backend/internal/usecase"
)

// main wires dependencies (dependency injection) and starts the HTTP
// server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var subscriberRepo repository.SubscriberRepository
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatalf("ping database: %v", err)
		}
		subscriberRepo = postgres.NewSubscriberRepository(db)
	} else {
		subscriberRepo = inmemory.NewSubscriberRepository()
	}

	subscriberPresenter := presenter.NewSubscriberPresenter()
	subscriberUsecase := usecase.NewSubscriberService(subscriberRepo)
	subscriberHandler := httpHandler.NewSubscriberHandler(subscriberUsecase, subscriberPresenter)

	r := router.New(subscriberHandler)

	log.Printf("starting newsletter server on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
