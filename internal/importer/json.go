package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"customer-lookup/internal/domain"
)

// JSONImporter reads a json-server style database ({"customers": [...]}) or a bare array.
type JSONImporter struct {
	r      io.Reader
	writer CustomerWriter
}

func NewJSONImporter(r io.Reader, w CustomerWriter) *JSONImporter {
	return &JSONImporter{r: r, writer: w}
}

// Run decodes every customer and upserts them in file order.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	raw, err := io.ReadAll(i.r)
	if err != nil {
		return 0, fmt.Errorf("read file: %w", err)
	}
	customers, err := decodeCustomers(raw)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, c := range customers {
		if err := save(ctx, i.writer, c); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

func decodeCustomers(raw []byte) ([]domain.Customer, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf")))
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty import file")
	}
	if trimmed[0] == '[' {
		var list []domain.Customer
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode customers array: %w", err)
		}
		return list, nil
	}
	var db struct {
		Customers []domain.Customer `json:"customers"`
	}
	if err := json.Unmarshal(trimmed, &db); err != nil {
		return nil, fmt.Errorf("decode customers database: %w", err)
	}
	return db.Customers, nil
}
