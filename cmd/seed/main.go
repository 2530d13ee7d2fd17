package main

import (
	"context"
	"log"
	"os"

	"customer-lookup/internal/config"
	"customer-lookup/internal/db"
	customerrepo "customer-lookup/internal/repository/customer"
	customersvc "customer-lookup/internal/service/customer"
	"customer-lookup/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	svc := customersvc.New(customerrepo.NewPostgres(pool, logger))
	n, err := seed.Apply(ctx, svc)
	if err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Printf("seed applied customers=%d", n)
}
