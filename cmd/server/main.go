package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tiecvui/api/internal/catalog"
	"github.com/tiecvui/api/internal/config"
	"github.com/tiecvui/api/internal/database"
	"github.com/tiecvui/api/internal/matcher"
	"github.com/tiecvui/api/internal/router"
	"github.com/tiecvui/api/internal/service"
	"github.com/tiecvui/api/internal/session"
	"github.com/tiecvui/api/internal/ws"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Database ping failed: %v", err)
	}

	queries := database.New(pool)

	// Load the catalog once at startup; the projection is read-only after.
	repo := catalog.NewRepository(queries)
	proj, presets, err := repo.Load(ctx)
	if err != nil {
		log.Fatalf("Load catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d food, %d furniture, %d staff items",
		len(proj.FoodItems), len(proj.FurnitureItems), len(proj.StaffItems))

	hub := ws.NewHub()
	go hub.Run()

	sessions := session.NewStore(proj, hub)
	m := matcher.New(proj.FoodItems)

	quoteService := service.NewQuoteService(pool, func(db database.DBTX) service.QuoteStore {
		return database.New(db)
	})

	r := router.New(cfg, queries, proj, presets, sessions, m, quoteService, hub)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}
