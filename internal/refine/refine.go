// Package refine re-filters fetched customers so name and date-of-birth criteria hold
// regardless of how the directory interpreted the query.
package refine

import (
	"strings"

	"customer-lookup/internal/domain"
	"customer-lookup/internal/fields"
	"customer-lookup/internal/query"
)

// Refine returns the customers matching every non-blank name and date-of-birth criterion.
// With no non-blank criteria the input is returned unchanged. Marital status and any other
// registered field are not checked here.
func Refine(c query.Criteria, customers []domain.Customer) []domain.Customer {
	if !query.HasParams(c) {
		return customers
	}

	first := needle(c.Get(fields.FirstName))
	last := needle(c.Get(fields.LastName))
	dob := c.Get(fields.DateOfBirth)
	matchDOB := strings.TrimSpace(dob) != ""

	out := make([]domain.Customer, 0, len(customers))
	for _, cust := range customers {
		if first != "" && !strings.Contains(strings.ToLower(cust.FirstName), first) {
			continue
		}
		if last != "" && !strings.Contains(strings.ToLower(cust.LastName), last) {
			continue
		}
		if matchDOB && cust.DateOfBirth != dob {
			continue
		}
		out = append(out, cust)
	}
	return out
}

func needle(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}
