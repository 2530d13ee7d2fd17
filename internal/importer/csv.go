package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"customer-lookup/internal/domain"
)

// CSVImporter reads flat customer exports. A row with a first or last name starts a customer;
// rows with both names blank add further addresses, phones or emails to the current one.
type CSVImporter struct {
	reader *csv.Reader
	writer CustomerWriter
}

func NewCSVImporter(r io.Reader, w CustomerWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, writer: w}
}

// Run parses CSV rows and upserts one customer per group of rows.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}
	index := headerIndex(headers)

	var (
		current  *domain.Customer
		imported int
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		first := pick(record, index, "firstName")
		last := pick(record, index, "lastName")
		if first != "" || last != "" {
			if current != nil {
				if err := save(ctx, i.writer, *current); err != nil {
					return imported, err
				}
				imported++
			}
			current = &domain.Customer{
				ID:            pick(record, index, "id"),
				FirstName:     first,
				LastName:      last,
				DateOfBirth:   pick(record, index, "dateOfBirth"),
				MaritalStatus: domain.MaritalStatus(pick(record, index, "maritalStatus")),
				SecureID:      pick(record, index, "secureId"),
			}
		}
		if current == nil {
			continue
		}
		appendContacts(current, record, index)
	}

	if current != nil {
		if err := save(ctx, i.writer, *current); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

func appendContacts(c *domain.Customer, record []string, index map[string]int) {
	if street, city := pick(record, index, "address.street"), pick(record, index, "address.city"); street != "" || city != "" {
		c.Addresses = append(c.Addresses, domain.Address{
			ID:      pick(record, index, "address.id"),
			Type:    domain.AddressType(pick(record, index, "address.type")),
			Street:  street,
			City:    city,
			State:   pick(record, index, "address.state"),
			ZipCode: pick(record, index, "address.zipCode"),
		})
	}
	if number := pick(record, index, "phone.number"); number != "" {
		c.Phones = append(c.Phones, domain.Phone{
			ID:        pick(record, index, "phone.id"),
			Type:      domain.PhoneType(pick(record, index, "phone.type")),
			Number:    number,
			IsPrimary: parseBool(pick(record, index, "phone.isPrimary")),
		})
	}
	if addr := pick(record, index, "email.address"); addr != "" {
		c.Emails = append(c.Emails, domain.Email{
			ID:        pick(record, index, "email.id"),
			Type:      domain.EmailType(pick(record, index, "email.type")),
			Address:   addr,
			IsPrimary: parseBool(pick(record, index, "email.isPrimary")),
		})
	}
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return strings.EqualFold(s, "yes") || strings.EqualFold(s, "y")
	}
	return b
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
