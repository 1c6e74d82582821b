package main // entry point for the product inventory API server

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/product-inventory/internal/config"
	"github.com/iliyamo/product-inventory/internal/database"
	"github.com/iliyamo/product-inventory/internal/handler"
	"github.com/iliyamo/product-inventory/internal/queue"
	"github.com/iliyamo/product-inventory/internal/repository"
	"github.com/iliyamo/product-inventory/internal/router"
	"github.com/iliyamo/product-inventory/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Optional collaborators: a nil Redis client disables rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	products := repository.NewProductRepo(db)

	authHandler := handler.NewAuthHandler(users, cfg.JWTSecret, cfg.BcryptCost)
	productHandler := handler.NewProductHandler(users, products, service.Publisher{})

	// Audit consumer runs for the lifetime of the process and reconnects
	// on broker failures.
	go func() {
		if err := queue.StartAuditConsumer(); err != nil {
			log.Printf("audit consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	router.Register(e, authHandler, productHandler, cfg.JWTSecret, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
