package seed

import (
	"context"
	"fmt"

	"customer-lookup/internal/domain"
)

// Writer stores directory customers.
type Writer interface {
	Upsert(ctx context.Context, c domain.Customer) (*domain.Customer, error)
}

// Apply inserts demo directory customers for manual testing. It is idempotent: records are keyed by id.
func Apply(ctx context.Context, w Writer) (int, error) {
	customers := Customers()
	for _, c := range customers {
		if _, err := w.Upsert(ctx, c); err != nil {
			return 0, fmt.Errorf("upsert customer %s: %w", c.ID, err)
		}
	}
	return len(customers), nil
}

// Customers returns the demo data set.
func Customers() []domain.Customer {
	return []domain.Customer{
		{
			ID: "1", FirstName: "John", LastName: "Smith", DateOfBirth: "1985-03-15",
			MaritalStatus: domain.MaritalMarried, SecureID: "SEC-7F3A-91C2",
			Addresses: []domain.Address{
				{ID: "a1", Type: domain.AddressHome, Street: "742 Evergreen Terrace", City: "Springfield", State: "IL", ZipCode: "62704"},
				{ID: "a2", Type: domain.AddressBusiness, Street: "100 Main St", City: "Chicago", State: "IL", ZipCode: "60601"},
			},
			Phones: []domain.Phone{
				{ID: "p1", Type: domain.PhoneMobile, Number: "(217) 555-0142", IsPrimary: true},
				{ID: "p2", Type: domain.PhoneWork, Number: "(312) 555-0199"},
			},
			Emails: []domain.Email{
				{ID: "e1", Type: domain.EmailPersonal, Address: "john.smith@example.com", IsPrimary: true},
				{ID: "e2", Type: domain.EmailWork, Address: "jsmith@acme.example"},
			},
		},
		{
			ID: "2", FirstName: "Joan", LastName: "Miller", DateOfBirth: "1972-11-02",
			MaritalStatus: domain.MaritalDivorced, SecureID: "SEC-22B0-4D7E",
			Addresses: []domain.Address{
				{ID: "a3", Type: domain.AddressHome, Street: "18 Harbor View", City: "Portland", State: "ME", ZipCode: "04101"},
			},
			Phones: []domain.Phone{
				{ID: "p3", Type: domain.PhoneHome, Number: "(207) 555-0117", IsPrimary: true},
			},
			Emails: []domain.Email{
				{ID: "e3", Type: domain.EmailPersonal, Address: "joan.miller@example.com", IsPrimary: true},
			},
		},
		{
			ID: "3", FirstName: "Amy", LastName: "Johnson", DateOfBirth: "1990-06-21",
			MaritalStatus: domain.MaritalSingle, SecureID: "SEC-9C41-0A88",
			Addresses: []domain.Address{
				{ID: "a4", Type: domain.AddressMailing, Street: "PO Box 311", City: "Austin", State: "TX", ZipCode: "78701"},
			},
			Phones: []domain.Phone{
				{ID: "p4", Type: domain.PhoneMobile, Number: "(512) 555-0163"},
			},
			Emails: []domain.Email{
				{ID: "e4", Type: domain.EmailWork, Address: "amy.johnson@work.example", IsPrimary: true},
			},
		},
		{
			ID: "4", FirstName: "Robert", LastName: "Jones", DateOfBirth: "1948-01-30",
			MaritalStatus: domain.MaritalWidowed, SecureID: "SEC-5E10-B3F9",
			Addresses: []domain.Address{
				{ID: "a5", Type: domain.AddressHome, Street: "5 Orchard Lane", City: "Boise", State: "ID", ZipCode: "83702"},
			},
			Phones: []domain.Phone{
				{ID: "p5", Type: domain.PhoneHome, Number: "(208) 555-0104", IsPrimary: true},
			},
		},
		{
			ID: "5", FirstName: "Maria", LastName: "Garcia", DateOfBirth: "1985-03-15",
			MaritalStatus: domain.MaritalMarried, SecureID: "SEC-D7A2-6612",
			Addresses: []domain.Address{
				{ID: "a6", Type: domain.AddressHome, Street: "2210 Sunset Blvd", City: "Los Angeles", State: "CA", ZipCode: "90026"},
			},
			Phones: []domain.Phone{
				{ID: "p6", Type: domain.PhoneMobile, Number: "(323) 555-0181", IsPrimary: true},
				{ID: "p7", Type: domain.PhoneWork, Number: "(213) 555-0122"},
			},
			Emails: []domain.Email{
				{ID: "e5", Type: domain.EmailPersonal, Address: "maria.garcia@example.com"},
				{ID: "e6", Type: domain.EmailWork, Address: "mgarcia@studio.example", IsPrimary: true},
			},
		},
		{
			ID: "6", FirstName: "Jonah", LastName: "Lee", DateOfBirth: "2001-09-09",
			MaritalStatus: domain.MaritalSingle, SecureID: "SEC-0B6D-E4C3",
			Emails: []domain.Email{
				{ID: "e7", Type: domain.EmailPersonal, Address: "jonah.lee@example.com", IsPrimary: true},
			},
		},
	}
}
