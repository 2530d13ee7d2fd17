package customer

import (
	"context"

	"customer-lookup/internal/domain"
)

// Filter narrows a directory listing. Empty fields impose no constraint.
type Filter struct {
	// Q is a case-insensitive substring of first name, last name or "first last".
	Q             string
	DateOfBirth   string
	MaritalStatus domain.MaritalStatus
}

// Repository persists and fetches directory customers.
type Repository interface {
	Search(ctx context.Context, f Filter) ([]domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Upsert(ctx context.Context, c domain.Customer) (*domain.Customer, error)
}
