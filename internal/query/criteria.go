package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Criteria maps field keys to raw user-entered values, remembering insertion order.
// The zero value is empty and ready to use.
type Criteria struct {
	keys   []string
	values map[string]string
}

// NewCriteria builds criteria from alternating key, value pairs.
func NewCriteria(pairs ...string) Criteria {
	var c Criteria
	for i := 0; i+1 < len(pairs); i += 2 {
		c.Set(pairs[i], pairs[i+1])
	}
	return c
}

// FromValues takes the first value of each key in keys that is present in v.
func FromValues(v url.Values, keys []string) Criteria {
	var c Criteria
	for _, k := range keys {
		if vals, ok := v[k]; ok && len(vals) > 0 {
			c.Set(k, vals[0])
		}
	}
	return c
}

// Set stores value under key. A key keeps its original position when overwritten.
func (c *Criteria) Set(key, value string) {
	if c.values == nil {
		c.values = make(map[string]string)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get returns the raw value for key, or "" when absent.
func (c Criteria) Get(key string) string {
	return c.values[key]
}

// Keys returns keys in insertion order.
func (c Criteria) Keys() []string {
	return append([]string(nil), c.keys...)
}

func (c Criteria) Len() int { return len(c.keys) }

// Clone returns an independent copy.
func (c Criteria) Clone() Criteria {
	var out Criteria
	for _, k := range c.keys {
		out.Set(k, c.values[k])
	}
	return out
}

// Map returns a plain map copy, for rendering.
func (c Criteria) Map() map[string]string {
	out := make(map[string]string, len(c.keys))
	for _, k := range c.keys {
		out[k] = c.values[k]
	}
	return out
}

// HasParams reports whether at least one value is non-blank after trimming.
func HasParams(c Criteria) bool {
	for _, k := range c.keys {
		if strings.TrimSpace(c.values[k]) != "" {
			return true
		}
	}
	return false
}

// MarshalJSON writes the criteria as an object in insertion order.
func (c Criteria) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(c.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a flat object of string values, preserving key order.
func (c *Criteria) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("criteria: expected object, got %v", tok)
	}
	var out Criteria
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("criteria: expected string key, got %v", tok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("criteria: value for %q: %w", key, err)
		}
		out.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}
