package query

import (
	"net/url"
	"strings"

	"customer-lookup/internal/fields"
)

// NameParam is the shared full-text parameter that first and last name are sent under.
const NameParam = "q"

type param struct {
	name  string
	value string
}

// Build converts criteria into a query string for GET /customers, including the leading "?".
// It returns "" when every value is blank. Keys unknown to reg are dropped.
//
// First and last name both map to NameParam with their trimmed value; when both are set the
// later key in iteration order overwrites the earlier one. Other values are encoded untrimmed.
func Build(reg *fields.Registry, c Criteria) string {
	if !HasParams(c) {
		return ""
	}

	var params []param
	set := func(name, value string) {
		for i := range params {
			if params[i].name == name {
				params[i].value = value
				return
			}
		}
		params = append(params, param{name: name, value: value})
	}

	for _, key := range c.keys {
		value := c.values[key]
		if strings.TrimSpace(value) == "" {
			continue
		}
		f, ok := reg.SearchField(key)
		if !ok {
			continue
		}
		if isNameKey(key) {
			set(NameParam, strings.TrimSpace(value))
			continue
		}
		set(f.QueryParam, value)
	}

	if len(params) == 0 {
		return ""
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.name+"="+encodeComponent(p.value))
	}
	return "?" + strings.Join(parts, "&")
}

func isNameKey(key string) bool {
	return key == fields.FirstName || key == fields.LastName
}

// encodeComponent percent-encodes like encodeURIComponent for the characters that matter here:
// spaces become %20 rather than "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
