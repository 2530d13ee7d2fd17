package lookup

import (
	"context"
	"io"
	"log"

	"customer-lookup/internal/directory"
	"customer-lookup/internal/domain"
	"customer-lookup/internal/fields"
	"customer-lookup/internal/query"
	"customer-lookup/internal/refine"
)

// Result is the outcome of one pass through the search pipeline.
type Result struct {
	Query     string
	Customers []domain.Customer
}

// Searcher runs criteria through query building, the directory fetch and refinement.
// It holds no per-user state and is safe for concurrent use.
type Searcher struct {
	registry *fields.Registry
	fetcher  directory.CustomerFetcher
	logger   *log.Logger
}

func NewSearcher(reg *fields.Registry, fetcher directory.CustomerFetcher, logger *log.Logger) *Searcher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if reg == nil {
		reg = fields.Default()
	}
	return &Searcher{registry: reg, fetcher: fetcher, logger: logger}
}

// Registry exposes the field registry the searcher builds queries from.
func (s *Searcher) Registry() *fields.Registry {
	return s.registry
}

// Run executes one search. On error Result still carries the query that was sent.
func (s *Searcher) Run(ctx context.Context, c query.Criteria) (Result, error) {
	qs := query.Build(s.registry, c)
	customers, err := s.fetcher.Customers(ctx, qs)
	if err != nil {
		s.logger.Printf("lookup: fetch failed query=%q err=%v", qs, err)
		return Result{Query: qs}, err
	}
	fetched := len(customers)
	customers = refine.Refine(c, customers)
	s.logger.Printf("lookup: search query=%q fetched=%d matched=%d", qs, fetched, len(customers))
	return Result{Query: qs, Customers: customers}, nil
}
