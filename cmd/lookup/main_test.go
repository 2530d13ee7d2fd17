package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"customer-lookup/internal/config"
	"customer-lookup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(cfg)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func directoryServer(t *testing.T, status int, customers []domain.Customer, gotQuery *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.RawQuery
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(customers)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchCommand(t *testing.T) {
	var rawQuery string
	srv := directoryServer(t, http.StatusOK, []domain.Customer{
		{ID: "1", FirstName: "Mary", LastName: "Ann", DateOfBirth: "1990-07-04", MaritalStatus: domain.MaritalSingle,
			Phones: []domain.Phone{{Type: domain.PhoneMobile, Number: "555-0101", IsPrimary: true}}},
		{ID: "2", FirstName: "Anna", LastName: "Mary", DateOfBirth: "1991-01-01"},
	}, &rawQuery)

	out, err := runCmd(t, config.Config{DirectoryTimeout: time.Second},
		"search", "--base-url", srv.URL, "--firstName", "Mary Ann", "--lastName", " ann ", "--details")
	require.NoError(t, err)

	assert.Equal(t, "q=ann", rawQuery)
	assert.Contains(t, out, "No results found")

	out, err = runCmd(t, config.Config{DirectoryTimeout: time.Second},
		"search", "--base-url", srv.URL, "--lastName", "ann", "--details")
	require.NoError(t, err)
	assert.Contains(t, out, "1 result")
	assert.Contains(t, out, "Mary Ann")
	assert.Contains(t, out, "Jul 4, 1990")
	assert.Contains(t, out, "555-0101 (primary)")
	assert.NotContains(t, out, "Anna Mary")
}

func TestSearchCommandFailure(t *testing.T) {
	srv := directoryServer(t, http.StatusInternalServerError, nil, nil)

	_, err := runCmd(t, config.Config{}, "search", "--base-url", srv.URL, "--firstName", "x")
	require.Error(t, err)
	assert.Equal(t, "failed to fetch customers", err.Error())
}

func TestFieldsCommand(t *testing.T) {
	out, err := runCmd(t, config.Config{}, "fields")
	require.NoError(t, err)
	assert.Contains(t, out, "firstName")
	assert.Contains(t, out, "select (Single, Married, Divorced, Widowed)")
	assert.Contains(t, out, "primaryEmail")
}

func TestFieldsCommandRestrictedRegistry(t *testing.T) {
	out, err := runCmd(t, config.Config{SearchFields: []string{"lastName"}}, "fields")
	require.NoError(t, err)
	assert.Contains(t, out, "lastName")
	assert.NotContains(t, out, "firstName")
}
