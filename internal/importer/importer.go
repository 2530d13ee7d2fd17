package importer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"customer-lookup/internal/domain"
	"github.com/google/uuid"
)

// CustomerWriter stores imported directory customers.
type CustomerWriter interface {
	Upsert(ctx context.Context, c domain.Customer) (*domain.Customer, error)
}

// Format is the layout of an import file.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Importer loads directory customers from a reader.
type Importer interface {
	Run(ctx context.Context) (int, error)
}

// New detects the format of r and returns the matching importer.
func New(r io.Reader, w CustomerWriter) (Importer, Format, error) {
	br := bufio.NewReader(r)
	format, err := DetectFormat(br)
	if err != nil {
		return nil, "", err
	}
	switch format {
	case FormatJSON:
		return NewJSONImporter(br, w), format, nil
	default:
		return NewCSVImporter(br, w), format, nil
	}
}

// DetectFormat peeks at the first significant byte: '{' or '[' means JSON, anything else CSV.
// Leading whitespace and a UTF-8 byte order mark are skipped.
func DetectFormat(br *bufio.Reader) (Format, error) {
	for n := 1; ; n++ {
		buf, err := br.Peek(n)
		if len(buf) < n {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("empty import file")
			}
			return "", fmt.Errorf("peek: %w", err)
		}
		switch b := buf[n-1]; b {
		case ' ', '\t', '\r', '\n', 0xEF, 0xBB, 0xBF:
			continue
		case '{', '[':
			return FormatJSON, nil
		default:
			return FormatCSV, nil
		}
	}
}

// fillIDs assigns ids to the customer and its contacts when the source left them blank.
func fillIDs(c *domain.Customer) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	for i := range c.Addresses {
		if c.Addresses[i].ID == "" {
			c.Addresses[i].ID = uuid.NewString()
		}
	}
	for i := range c.Phones {
		if c.Phones[i].ID == "" {
			c.Phones[i].ID = uuid.NewString()
		}
	}
	for i := range c.Emails {
		if c.Emails[i].ID == "" {
			c.Emails[i].ID = uuid.NewString()
		}
	}
}

func save(ctx context.Context, w CustomerWriter, c domain.Customer) error {
	fillIDs(&c)
	if _, err := w.Upsert(ctx, c); err != nil {
		return fmt.Errorf("upsert customer %q: %w", c.ID, err)
	}
	return nil
}
