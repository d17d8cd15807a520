package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/civiclab/county-health-api/internal/config"
	"github.com/civiclab/county-health-api/internal/countydata"
	"github.com/civiclab/county-health-api/internal/faas"
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
	r.Mount("/", countydata.SetupRoutes(h))

	lambda.Start(faas.HTTPHandler(r))
}
