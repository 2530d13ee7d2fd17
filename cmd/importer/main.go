package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"customer-lookup/internal/config"
	"customer-lookup/internal/db"
	"customer-lookup/internal/importer"
	customerrepo "customer-lookup/internal/repository/customer"
	customersvc "customer-lookup/internal/service/customer"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a customer export (json-server JSON or CSV)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	svc := customersvc.New(customerrepo.NewPostgres(pool, logger))
	imp, format, err := importer.New(f, svc)
	if err != nil {
		logger.Fatalf("detect format: %v", err)
	}

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d customers from %s (%s) in %s\n", count, filePath, format, time.Since(start).Truncate(time.Millisecond))
}
