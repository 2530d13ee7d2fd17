package query

import (
	"encoding/json"
	"net/url"
	"testing"
)

func TestCriteria_SetKeepsFirstPosition(t *testing.T) {
	c := NewCriteria("a", "1", "b", "2")
	c.Set("a", "3")
	keys := c.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected keys %v", keys)
	}
	if c.Get("a") != "3" {
		t.Fatalf("expected overwritten value, got %q", c.Get("a"))
	}
}

func TestCriteria_CloneIsIndependent(t *testing.T) {
	c := NewCriteria("a", "1")
	clone := c.Clone()
	clone.Set("a", "2")
	clone.Set("b", "3")
	if c.Get("a") != "1" || c.Len() != 1 {
		t.Fatalf("original mutated: %v", c.Map())
	}
}

func TestHasParams(t *testing.T) {
	if HasParams(Criteria{}) {
		t.Fatalf("empty criteria should have no params")
	}
	if HasParams(NewCriteria("a", "  ", "b", "")) {
		t.Fatalf("blank criteria should have no params")
	}
	if !HasParams(NewCriteria("a", " x ")) {
		t.Fatalf("expected params")
	}
}

func TestFromValues(t *testing.T) {
	v := url.Values{"lastName": {"Smith"}, "firstName": {"Jo", "ignored"}, "other": {"x"}}
	c := FromValues(v, []string{"firstName", "lastName", "dateOfBirth"})
	keys := c.Keys()
	if len(keys) != 2 || keys[0] != "firstName" || keys[1] != "lastName" {
		t.Fatalf("unexpected keys %v", keys)
	}
	if c.Get("firstName") != "Jo" {
		t.Fatalf("expected first value, got %q", c.Get("firstName"))
	}
}

func TestCriteria_JSONPreservesOrder(t *testing.T) {
	var c Criteria
	if err := json.Unmarshal([]byte(`{"lastName":"Smith","firstName":"John"}`), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	keys := c.Keys()
	if keys[0] != "lastName" || keys[1] != "firstName" {
		t.Fatalf("unexpected order %v", keys)
	}
	out, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"lastName":"Smith","firstName":"John"}` {
		t.Fatalf("unexpected json %s", out)
	}
}

func TestCriteria_UnmarshalRejectsNonString(t *testing.T) {
	var c Criteria
	if err := json.Unmarshal([]byte(`{"firstName":1}`), &c); err == nil {
		t.Fatalf("expected error for numeric value")
	}
	if err := json.Unmarshal([]byte(`["x"]`), &c); err == nil {
		t.Fatalf("expected error for array")
	}
}
