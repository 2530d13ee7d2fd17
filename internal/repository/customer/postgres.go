package customer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"

	"customer-lookup/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `
SELECT id, first_name, last_name, date_of_birth, marital_status, secure_id, addresses, phones, emails
FROM customers
`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Search(ctx context.Context, f Filter) ([]domain.Customer, error) {
	q, args := searchQuery(f)
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("customer repo: search error=%v", err)
		return nil, err
	}
	defer rows.Close()

	out := []domain.Customer{}
	for rows.Next() {
		c, err := r.scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// searchQuery builds the filtered select; values are always bound as parameters.
func searchQuery(f Filter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if q := strings.TrimSpace(f.Q); q != "" {
		args = append(args, "%"+escapeLike(strings.ToLower(q))+"%")
		n := strconv.Itoa(len(args))
		where = append(where, "(lower(first_name) LIKE $"+n+" OR lower(last_name) LIKE $"+n+
			" OR lower(first_name || ' ' || last_name) LIKE $"+n+")")
	}
	if f.DateOfBirth != "" {
		args = append(args, f.DateOfBirth)
		where = append(where, "date_of_birth = $"+strconv.Itoa(len(args)))
	}
	if f.MaritalStatus != "" {
		args = append(args, string(f.MaritalStatus))
		where = append(where, "marital_status = $"+strconv.Itoa(len(args)))
	}

	q := selectColumns
	if len(where) > 0 {
		q += "WHERE " + strings.Join(where, " AND ") + "\n"
	}
	q += "ORDER BY last_name, first_name, id\n"
	return q, args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	q := selectColumns + "WHERE id = $1\nLIMIT 1\n"
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) Upsert(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	addrJSON, err := json.Marshal(nonNil(c.Addresses))
	if err != nil {
		return nil, err
	}
	phoneJSON, err := json.Marshal(nonNil(c.Phones))
	if err != nil {
		return nil, err
	}
	emailJSON, err := json.Marshal(nonNil(c.Emails))
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO customers (id, first_name, last_name, date_of_birth, marital_status, secure_id, addresses, phones, emails)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE
SET first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    date_of_birth = EXCLUDED.date_of_birth,
    marital_status = EXCLUDED.marital_status,
    secure_id = EXCLUDED.secure_id,
    addresses = EXCLUDED.addresses,
    phones = EXCLUDED.phones,
    emails = EXCLUDED.emails,
    updated_at = now()
RETURNING id, first_name, last_name, date_of_birth, marital_status, secure_id, addresses, phones, emails
`
	return r.scanCustomer(r.pool.QueryRow(
		ctx,
		q,
		c.ID,
		c.FirstName,
		c.LastName,
		c.DateOfBirth,
		string(c.MaritalStatus),
		c.SecureID,
		addrJSON,
		phoneJSON,
		emailJSON,
	))
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	var status string
	var addrJSON, phoneJSON, emailJSON []byte
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.DateOfBirth,
		&status,
		&c.SecureID,
		&addrJSON,
		&phoneJSON,
		&emailJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	c.MaritalStatus = domain.MaritalStatus(status)
	c.Addresses = []domain.Address{}
	c.Phones = []domain.Phone{}
	c.Emails = []domain.Email{}
	if len(addrJSON) > 0 {
		if err := json.Unmarshal(addrJSON, &c.Addresses); err != nil {
			r.logger.Printf("customer repo: decode addresses id=%s err=%v", c.ID, err)
			return nil, err
		}
	}
	if len(phoneJSON) > 0 {
		if err := json.Unmarshal(phoneJSON, &c.Phones); err != nil {
			r.logger.Printf("customer repo: decode phones id=%s err=%v", c.ID, err)
			return nil, err
		}
	}
	if len(emailJSON) > 0 {
		if err := json.Unmarshal(emailJSON, &c.Emails); err != nil {
			r.logger.Printf("customer repo: decode emails id=%s err=%v", c.ID, err)
			return nil, err
		}
	}
	return &c, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
