package main

import (
	"flag"
	"log"
	"os"

	"github.com/civiclab/county-health-api/internal/csvload"
)

func main() {
	var (
		dbPath  = flag.String("db", "", "output sqlite database file")
		csvPath = flag.String("csv", "", "input CSV file with header row")
	)
	flag.Parse()

	if *dbPath == "" || *csvPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if _, err := os.Stat(*csvPath); err != nil {
		log.Fatalf("[csv2sqlite] CSV file not found: %s", *csvPath)
	}

	cfg := csvload.Config{
		DBPath:  *dbPath,
		CSVPath: *csvPath,
	}

	if err := csvload.Run(cfg); err != nil {
		log.Fatal("[csv2sqlite] ", err)
	}
}
