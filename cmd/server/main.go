package main

// @title           Shelfshare Catalog API
// @version         1.0
// @description     Book catalog with authors, publishers, genres and named book lookups.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/catalog"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/config"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/db"
	docs "github.com/snnyvrz/shelfshare/catalog-api/internal/docs"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/handler"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/middleware"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/repository"
	"github.com/snnyvrz/shelfshare/catalog-api/internal/validation"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const appVersion = "0.2.0"

func main() {
	startTime := time.Now()

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	e := gin.Default()
	e.Use(middleware.RequestID())

	if err := e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	}); err != nil {
		log.Fatalf("failed to set trusted proxies: %v", err)
	}

	if err := validation.Register(); err != nil {
		log.Fatalf("failed to register validators: %v", err)
	}

	docs.SwaggerInfo.BasePath = "/api"

	database, err := db.ConnectWithRetry(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatal(err)
	}

	healthHandler := handler.NewHealthHandler(database, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	books := repository.NewGormBookRepository(database)
	authors := repository.NewAuthorRepository(database)
	publishers := repository.NewPublisherRepository(database)
	genres := repository.NewGenreRepository(database)
	subgenres := repository.NewSubgenreRepository(database)

	resolver := catalog.NewResolver(books, authors, publishers, genres, subgenres)

	api := e.Group("/api")
	{
		handler.NewBookHandler(books, resolver).RegisterRoutes(api)
		handler.NewAuthorHandler(authors).RegisterRoutes(api)
		handler.NewPublisherHandler(publishers).RegisterRoutes(api)
		handler.NewGenreHandler(genres).RegisterRoutes(api)
		handler.NewSubgenreHandler(subgenres).RegisterRoutes(api)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := e.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
