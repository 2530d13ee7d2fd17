package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"customer-lookup/internal/domain"
	custrepo "customer-lookup/internal/repository/customer"
)

// Service serves the directory's customer collection.
type Service struct {
	repo custrepo.Repository
}

func New(repo custrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ListInput mirrors the GET /customers query parameters.
type ListInput struct {
	Q             string `form:"q"`
	DateOfBirth   string `form:"dateOfBirth"`
	MaritalStatus string `form:"maritalStatus"`
}

// List returns customers matching in. Invalid dates or statuses yield domain.ErrInvalidInput.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Customer, error) {
	dob := strings.TrimSpace(in.DateOfBirth)
	if dob != "" && !validDate(dob) {
		return nil, fmt.Errorf("%w: dateOfBirth must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	status := domain.MaritalStatus(strings.TrimSpace(in.MaritalStatus))
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown maritalStatus %q", domain.ErrInvalidInput, status)
	}
	return s.repo.Search(ctx, custrepo.Filter{
		Q:             strings.TrimSpace(in.Q),
		DateOfBirth:   dob,
		MaritalStatus: status,
	})
}

// Get returns one customer by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id required", domain.ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id)
}

// Upsert validates and stores a directory record.
func (s *Service) Upsert(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, c)
}

// Validate checks the fields a directory record must carry.
func Validate(c domain.Customer) error {
	switch {
	case strings.TrimSpace(c.ID) == "":
		return fmt.Errorf("%w: id required", domain.ErrInvalidInput)
	case strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "":
		return fmt.Errorf("%w: customer %s: first and last name required", domain.ErrInvalidInput, c.ID)
	case c.DateOfBirth != "" && !validDate(c.DateOfBirth):
		return fmt.Errorf("%w: customer %s: dateOfBirth %q must be YYYY-MM-DD", domain.ErrInvalidInput, c.ID, c.DateOfBirth)
	case c.MaritalStatus != "" && !c.MaritalStatus.Valid():
		return fmt.Errorf("%w: customer %s: unknown maritalStatus %q", domain.ErrInvalidInput, c.ID, c.MaritalStatus)
	}
	if countPrimaryPhones(c) > 1 {
		return fmt.Errorf("%w: customer %s: more than one primary phone", domain.ErrInvalidInput, c.ID)
	}
	if countPrimaryEmails(c) > 1 {
		return fmt.Errorf("%w: customer %s: more than one primary email", domain.ErrInvalidInput, c.ID)
	}
	return nil
}

func validDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

func countPrimaryPhones(c domain.Customer) int {
	n := 0
	for _, p := range c.Phones {
		if p.IsPrimary {
			n++
		}
	}
	return n
}

func countPrimaryEmails(c domain.Customer) int {
	n := 0
	for _, e := range c.Emails {
		if e.IsPrimary {
			n++
		}
	}
	return n
}
