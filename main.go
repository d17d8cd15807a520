package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/civiclab/county-health-api/internal/config"
	"github.com/civiclab/county-health-api/internal/countydata"
	"github.com/civiclab/county-health-api/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	store := &countydata.Store{Path: cfg.DBPath}
	h := countydata.NewHandler(store)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(middleware.CORS(cfg.Origins))
	r.Mount("/", countydata.SetupRoutes(h))

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
